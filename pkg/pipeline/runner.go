package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/logogif/pkg/cache"
	"github.com/matzehuels/logogif/pkg/logo"
	"github.com/matzehuels/logogif/pkg/observability"
	"github.com/matzehuels/logogif/pkg/quantize"
	"github.com/matzehuels/logogif/pkg/sink"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't store
// pipeline results.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render → quantize → encode pipeline.
// A cached artifact for identical options and fonts is returned without
// rendering.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	anim, err := Prepare(opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	l := anim.Layout()

	result := &Result{Layout: l}
	result.Stats.Width = l.Width
	result.Stats.Height = l.Height
	result.Stats.FrameCount = len(anim.Steps)
	result.Stats.Duration = anim.Duration()
	result.Stats.LayoutTime = time.Since(layoutStart)
	observability.Pipeline().OnLayoutComplete(ctx, l.Width, l.Height, result.Stats.LayoutTime)

	r.Logger.Info("computed layout",
		"width", l.Width,
		"height", l.Height,
		"frames", len(anim.Steps),
		"duration", result.Stats.LayoutTime)

	key, err := r.artifactKey(opts, anim)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.Key = key

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "artifact")
		r.Logger.Debug("artifact cache hit", "key", key)
		result.GIF = data
		result.Stats.Bytes = len(data)
		result.CacheInfo.ArtifactHit = true
		return result, nil
	} else if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Stage 2: Render
	renderStart := time.Now()
	frames, err := anim.Frames(ctx)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, len(frames), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.Logger.Info("rendered frames",
		"frames", len(frames),
		"duration", result.Stats.RenderTime)

	// Stage 3: Quantize
	quantizeStart := time.Now()
	paletted, degraded, err := r.Quantize(ctx, frames, opts.QuantizeSettings())
	if err != nil {
		return nil, fmt.Errorf("quantize: %w", err)
	}
	result.Stats.Degraded = degraded
	result.Stats.QuantizeTime = time.Since(quantizeStart)
	observability.Pipeline().OnQuantizeComplete(ctx, len(paletted), degraded, result.Stats.QuantizeTime)
	r.Logger.Debug("quantized frames",
		"frames", len(paletted),
		"degraded", degraded,
		"duration", result.Stats.QuantizeTime)

	// Stage 4: Encode
	encodeStart := time.Now()
	data, err := sink.RenderGIF(paletted,
		sink.WithOptimize(opts.Optimize),
		sink.WithLoopCount(opts.LoopCount),
	)
	result.Stats.EncodeTime = time.Since(encodeStart)
	observability.Pipeline().OnEncodeComplete(ctx, len(data), result.Stats.EncodeTime, err)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.GIF = data
	result.Stats.Bytes = len(data)

	r.Logger.Info("encoded gif",
		"bytes", len(data),
		"optimize", opts.Optimize,
		"duration", result.Stats.EncodeTime)

	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return result, nil
}

// Quantize converts frames to paletted sink frames in order. It returns the
// number of frames whose palette had to be reduced; those are logged as
// warnings but never fail the run.
func (r *Runner) Quantize(ctx context.Context, frames []logo.Frame, opts quantize.Options) ([]sink.Frame, int, error) {
	out := make([]sink.Frame, len(frames))
	degraded := 0
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return nil, degraded, err
		}
		res := quantize.Quantize(f.Image, opts)
		if res.Degraded {
			degraded++
			r.Logger.Warn("palette reduced",
				"frame", i,
				"phase", f.Phase,
				"colors", res.Colors,
				"max", opts.MaxColors)
		}
		out[i] = sink.Frame{Image: res.Image, Delay: f.Delay, Transparent: res.Transparent}
	}
	return out, degraded, nil
}

// artifactKey hashes everything that determines the artifact bytes.
func (r *Runner) artifactKey(opts Options, anim *Animation) (string, error) {
	optsData, err := json.Marshal(opts)
	if err != nil {
		return "", fmt.Errorf("serialize options for cache key: %w", err)
	}
	inputHash := cache.HashAll(optsData, anim.FontData[0], anim.FontData[1])
	return r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts()), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
