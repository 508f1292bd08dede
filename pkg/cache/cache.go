// Package cache stores rendered artifacts between runs.
//
// The CLI uses a [FileCache] under the user cache directory so that running
// render twice with identical options and fonts returns the stored GIF
// instead of re-rendering every frame. [NullCache] disables caching.
//
// Keys are built by a [Keyer] from a hash of everything that affects the
// output, so a stale entry is never served for changed inputs.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// TTLArtifact is how long a rendered GIF stays cached.
const TTLArtifact = 7 * 24 * time.Hour

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the encoder settings that change artifact bytes
// without changing the rendered frames.
type ArtifactKeyOpts struct {
	Format    string `json:"format"`
	Optimize  bool   `json:"optimize"`
	LoopCount int    `json:"loop_count"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<hash>" over the input hash and opts.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

// NullCache disables caching. Every lookup misses and writes are discarded,
// so renders run the full pipeline.
type NullCache struct{}

// NewNullCache returns a cache for --no-cache runs.
func NewNullCache() *NullCache { return &NullCache{} }

// Get always misses.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards data.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*NullCache) Delete(context.Context, string) error {
	return nil
}

func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
