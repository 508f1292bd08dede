// Package pipeline turns a configuration into an animated logo GIF.
//
// This package implements the complete layout → render → quantize → encode
// pipeline used by the CLI. By centralizing this logic, the render and
// preview commands produce identical frames from the same options.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Layout: measure the texts once and fix every element position
//  2. Render: expand the timeline and rasterize one RGBA frame per step
//  3. Quantize: convert each frame to a paletted image with a transparent index
//  4. Encode: write the frames as a looping GIF
//
// # Usage
//
// Load options, then execute the pipeline:
//
//	opts, err := pipeline.LoadOptions("logo.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(opts.Output, result.GIF, 0644)
//
// Render frames without encoding, for example to preview them:
//
//	anim, err := pipeline.Prepare(opts)
//	frames, err := anim.Frames(ctx)
package pipeline

import (
	"time"

	"github.com/matzehuels/logogif/pkg/logo"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultLabel    = "corsair"
	DefaultSubtitle = "Compliance trust exchange protocol."
	DefaultAccent   = "Verify proof. Not promises."
	DefaultOutput   = "logo.gif"
)

// Default colors. An empty background keeps the canvas transparent.
const (
	DefaultTextColor      = "#E2DFD6"
	DefaultHighlightColor = "#2ECC71"
	DefaultSubtitleColor  = "#8B92A8"
	DefaultAccentColor    = "#D4A853"
	DefaultFlagColor      = "#E2DFD6"
	DefaultFlagShineColor = "#D4A853"
)

// Default font sizes in points at 72 DPI.
const (
	DefaultMainSize     = 140.0
	DefaultSubtitleSize = 22.0
	DefaultAccentSize   = 22.0
)

// Default per-step delays in centiseconds.
const (
	DefaultTypingDelay    = 12
	DefaultSettleDelay    = 8
	DefaultSubtitleDelay  = 15
	DefaultAccentDelay    = 350
	DefaultSweepDelay     = 6
	DefaultFlagShineDelay = 5
	DefaultFinalHold      = 250
)

// Default layout constants in pixels.
const (
	DefaultPaddingX      = 30
	DefaultPaddingTop    = 12
	DefaultPaddingBottom = 12
	DefaultKerning       = 2
	DefaultDescender     = 10
	DefaultSubtitleGap   = 8
	DefaultAccentGap     = 6
	DefaultFlagCell      = 8
	DefaultFlagGap       = 16
)

// Default quantization settings.
const (
	DefaultAlphaThreshold = 128
	DefaultMaxColors      = 255
)

// FormatGIF is the only artifact format.
const FormatGIF = "gif"

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// It is loaded from TOML and also serializes as JSON for cache keys.
type Options struct {
	Label     string `toml:"label" json:"label"`
	Subtitle  string `toml:"subtitle" json:"subtitle"`
	Accent    string `toml:"accent" json:"accent"`
	Output    string `toml:"output" json:"-"`
	Optimize  bool   `toml:"optimize" json:"optimize"`
	LoopCount int    `toml:"loop_count" json:"loop_count"`

	Colors   ColorOptions    `toml:"colors" json:"colors"`
	Fonts    FontOptions     `toml:"fonts" json:"fonts"`
	Timing   TimingOptions   `toml:"timing" json:"timing"`
	Layout   LayoutOptions   `toml:"layout" json:"layout"`
	Flag     FlagOptions     `toml:"flag" json:"flag"`
	Quantize QuantizeOptions `toml:"quantize" json:"quantize"`
}

// ColorOptions are hex colors ("#RRGGBB" or "#RGB").
type ColorOptions struct {
	Text       string `toml:"text" json:"text"`
	Highlight  string `toml:"highlight" json:"highlight"`
	Subtitle   string `toml:"subtitle" json:"subtitle"`
	Accent     string `toml:"accent" json:"accent"`
	Background string `toml:"background" json:"background"`
	Flag       string `toml:"flag" json:"flag"`
	FlagShine  string `toml:"flag_shine" json:"flag_shine"`
}

// FontOptions select font files and sizes. Empty paths use the embedded
// Go Bold (main) and Go Regular (secondary) fonts.
type FontOptions struct {
	Main         string  `toml:"main" json:"main"`
	Secondary    string  `toml:"secondary" json:"secondary"`
	MainSize     float64 `toml:"main_size" json:"main_size"`
	SubtitleSize float64 `toml:"subtitle_size" json:"subtitle_size"`
	AccentSize   float64 `toml:"accent_size" json:"accent_size"`
}

// TimingOptions are per-step delays in centiseconds.
type TimingOptions struct {
	Typing    int `toml:"typing" json:"typing"`
	Settle    int `toml:"settle" json:"settle"`
	Subtitle  int `toml:"subtitle" json:"subtitle"`
	Accent    int `toml:"accent" json:"accent"`
	Sweep     int `toml:"sweep" json:"sweep"`
	FlagShine int `toml:"flag_shine" json:"flag_shine"`
	FinalHold int `toml:"final_hold" json:"final_hold"`
}

// LayoutOptions are spacing constants in pixels.
type LayoutOptions struct {
	PaddingX      int `toml:"padding_x" json:"padding_x"`
	PaddingTop    int `toml:"padding_top" json:"padding_top"`
	PaddingBottom int `toml:"padding_bottom" json:"padding_bottom"`
	Kerning       int `toml:"kerning" json:"kerning"`
	Descender     int `toml:"descender" json:"descender"`
	SubtitleGap   int `toml:"subtitle_gap" json:"subtitle_gap"`
	AccentGap     int `toml:"accent_gap" json:"accent_gap"`
}

// FlagOptions control the pixel flag drawn left of the label.
// Rows use '#' for filled cells and '.' for empty ones; no rows selects the
// built-in pennant.
type FlagOptions struct {
	Enabled bool     `toml:"enabled" json:"enabled"`
	Cell    int      `toml:"cell" json:"cell"`
	Gap     int      `toml:"gap" json:"gap"`
	Rows    []string `toml:"rows,omitempty" json:"rows,omitempty"`
}

// QuantizeOptions control palette conversion.
type QuantizeOptions struct {
	AlphaThreshold int `toml:"alpha_threshold" json:"alpha_threshold"`
	MaxColors      int `toml:"max_colors" json:"max_colors"`
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// GIF is the encoded artifact.
	GIF []byte

	// Layout is the computed canvas layout.
	Layout logo.Layout

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Width        int
	Height       int
	FrameCount   int
	Duration     int // total display time in centiseconds
	Degraded     int // frames whose palette had to be reduced
	Bytes        int
	LayoutTime   time.Duration
	RenderTime   time.Duration
	QuantizeTime time.Duration
	EncodeTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	ArtifactHit bool
	Key         string
}
