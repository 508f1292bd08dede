package pipeline

import (
	"context"

	"github.com/matzehuels/logogif/pkg/fonts"
	"github.com/matzehuels/logogif/pkg/logo"
)

// Animation is a prepared timeline: the layout is computed and every step
// is expanded, but nothing is rasterized yet.
type Animation struct {
	Renderer *logo.Renderer
	Phases   []logo.Phase
	Steps    []logo.Step

	// FontData holds the main and secondary font bytes, for cache keys.
	FontData [2][]byte

	flagCols int
}

// Layout returns the computed canvas layout.
func (a *Animation) Layout() logo.Layout {
	return a.Renderer.Layout()
}

// Duration returns the total display time in centiseconds.
func (a *Animation) Duration() int {
	return logo.TotalDuration(a.Phases, a.Renderer.Len(), a.flagCols)
}

// Frames rasterizes every step in timeline order.
func (a *Animation) Frames(ctx context.Context) ([]logo.Frame, error) {
	return logo.BuildSequence(ctx, a.Renderer, a.Steps)
}

// Prepare loads fonts, computes the layout once and expands the timeline.
// opts must already be validated.
func Prepare(opts Options) (*Animation, error) {
	style, err := opts.LogoStyle()
	if err != nil {
		return nil, err
	}

	faces, data, err := LoadFaces(opts.Fonts)
	if err != nil {
		return nil, err
	}

	texts := opts.LogoTexts()
	features := opts.LogoFeatures()
	layout := logo.ComputeLayout(logo.Measure(faces, texts), style, features)
	renderer := logo.NewRenderer(layout, style, texts, faces)

	flagCols := 0
	if layout.HasFlag {
		flagCols = style.Flag.Cols()
	}
	phases := logo.DefaultTimeline(opts.LogoTiming(), features)

	return &Animation{
		Renderer: renderer,
		Phases:   phases,
		Steps:    logo.Expand(phases, renderer.Len(), flagCols),
		FontData: data,
		flagCols: flagCols,
	}, nil
}

// LoadFaces checks the configured font files, then builds the main,
// subtitle and accent faces. The subtitle and accent faces share the
// secondary font.
func LoadFaces(fo FontOptions) (logo.Faces, [2][]byte, error) {
	var data [2][]byte
	if err := fonts.Preflight(fo.Main, fo.Secondary); err != nil {
		return logo.Faces{}, data, err
	}

	mainData, err := fonts.Load(fo.Main, fonts.DefaultBold)
	if err != nil {
		return logo.Faces{}, data, err
	}
	secondaryData, err := fonts.Load(fo.Secondary, fonts.DefaultRegular)
	if err != nil {
		return logo.Faces{}, data, err
	}

	mainFont, err := fonts.Parse(mainData)
	if err != nil {
		return logo.Faces{}, data, err
	}
	secondaryFont, err := fonts.Parse(secondaryData)
	if err != nil {
		return logo.Faces{}, data, err
	}

	data = [2][]byte{mainData, secondaryData}
	return logo.Faces{
		Main:     fonts.FromFont(mainFont, fo.MainSize),
		Subtitle: fonts.FromFont(secondaryFont, fo.SubtitleSize),
		Accent:   fonts.FromFont(secondaryFont, fo.AccentSize),
	}, data, nil
}
