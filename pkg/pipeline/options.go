package pipeline

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/logogif/pkg/cache"
	apperrors "github.com/matzehuels/logogif/pkg/errors"
	"github.com/matzehuels/logogif/pkg/logo"
	"github.com/matzehuels/logogif/pkg/quantize"
)

const (
	maxLineLength = 200
	maxFlagSize   = 64
)

// Defaults returns the complete default configuration.
func Defaults() Options {
	return Options{
		Label:     DefaultLabel,
		Subtitle:  DefaultSubtitle,
		Accent:    DefaultAccent,
		Output:    DefaultOutput,
		Optimize:  true,
		LoopCount: 0,
		Colors: ColorOptions{
			Text:      DefaultTextColor,
			Highlight: DefaultHighlightColor,
			Subtitle:  DefaultSubtitleColor,
			Accent:    DefaultAccentColor,
			Flag:      DefaultFlagColor,
			FlagShine: DefaultFlagShineColor,
		},
		Fonts: FontOptions{
			MainSize:     DefaultMainSize,
			SubtitleSize: DefaultSubtitleSize,
			AccentSize:   DefaultAccentSize,
		},
		Timing: TimingOptions{
			Typing:    DefaultTypingDelay,
			Settle:    DefaultSettleDelay,
			Subtitle:  DefaultSubtitleDelay,
			Accent:    DefaultAccentDelay,
			Sweep:     DefaultSweepDelay,
			FlagShine: DefaultFlagShineDelay,
			FinalHold: DefaultFinalHold,
		},
		Layout: LayoutOptions{
			PaddingX:      DefaultPaddingX,
			PaddingTop:    DefaultPaddingTop,
			PaddingBottom: DefaultPaddingBottom,
			Kerning:       DefaultKerning,
			Descender:     DefaultDescender,
			SubtitleGap:   DefaultSubtitleGap,
			AccentGap:     DefaultAccentGap,
		},
		Flag: FlagOptions{
			Cell: DefaultFlagCell,
			Gap:  DefaultFlagGap,
		},
		Quantize: QuantizeOptions{
			AlphaThreshold: DefaultAlphaThreshold,
			MaxColors:      DefaultMaxColors,
		},
	}
}

// SetDefaults fills fields whose zero value is never valid: foreground
// colors, font sizes, delays, the flag cell and the palette ceiling.
// Spacing and the alpha threshold may legitimately be zero, so they are only
// defaulted when their whole section is unset. Texts and the background are
// left alone because empty is meaningful for them; start from [Defaults] to
// get every default.
func (o *Options) SetDefaults() {
	if o.Output == "" {
		o.Output = DefaultOutput
	}

	setString(&o.Colors.Text, DefaultTextColor)
	setString(&o.Colors.Highlight, DefaultHighlightColor)
	setString(&o.Colors.Subtitle, DefaultSubtitleColor)
	setString(&o.Colors.Accent, DefaultAccentColor)
	setString(&o.Colors.Flag, DefaultFlagColor)
	setString(&o.Colors.FlagShine, DefaultFlagShineColor)

	setFloat(&o.Fonts.MainSize, DefaultMainSize)
	setFloat(&o.Fonts.SubtitleSize, DefaultSubtitleSize)
	setFloat(&o.Fonts.AccentSize, DefaultAccentSize)

	setInt(&o.Timing.Typing, DefaultTypingDelay)
	setInt(&o.Timing.Settle, DefaultSettleDelay)
	setInt(&o.Timing.Subtitle, DefaultSubtitleDelay)
	setInt(&o.Timing.Accent, DefaultAccentDelay)
	setInt(&o.Timing.Sweep, DefaultSweepDelay)
	setInt(&o.Timing.FlagShine, DefaultFlagShineDelay)
	setInt(&o.Timing.FinalHold, DefaultFinalHold)

	if o.Layout == (LayoutOptions{}) {
		o.Layout = Defaults().Layout
	}
	if o.Quantize == (QuantizeOptions{}) {
		o.Quantize.AlphaThreshold = DefaultAlphaThreshold
	}

	setInt(&o.Flag.Cell, DefaultFlagCell)
	setInt(&o.Quantize.MaxColors, DefaultMaxColors)
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}

// Validate checks every option and returns the first problem found.
func (o *Options) Validate() error {
	if err := apperrors.ValidateLabel(o.Label); err != nil {
		return err
	}
	if err := validateLine("subtitle", o.Subtitle); err != nil {
		return err
	}
	if err := validateLine("accent", o.Accent); err != nil {
		return err
	}
	if o.Output != "" {
		if err := apperrors.ValidateOutputPath(o.Output); err != nil {
			return err
		}
	}
	if o.LoopCount < 0 || o.LoopCount > 65535 {
		return invalidConfig("loop_count must be between 0 and 65535, got %d", o.LoopCount)
	}

	if _, err := o.LogoStyle(); err != nil {
		return err
	}

	sizes := []struct {
		name string
		v    float64
	}{
		{"fonts.main_size", o.Fonts.MainSize},
		{"fonts.subtitle_size", o.Fonts.SubtitleSize},
		{"fonts.accent_size", o.Fonts.AccentSize},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return invalidConfig("%s must be positive, got %g", s.name, s.v)
		}
	}

	delays := []struct {
		name string
		v    int
	}{
		{"timing.typing", o.Timing.Typing},
		{"timing.settle", o.Timing.Settle},
		{"timing.subtitle", o.Timing.Subtitle},
		{"timing.accent", o.Timing.Accent},
		{"timing.sweep", o.Timing.Sweep},
		{"timing.flag_shine", o.Timing.FlagShine},
		{"timing.final_hold", o.Timing.FinalHold},
	}
	for _, d := range delays {
		if d.v < logo.MinDelay {
			return invalidConfig("%s must be at least %d centisecond, got %d", d.name, logo.MinDelay, d.v)
		}
	}

	spacing := []struct {
		name string
		v    int
	}{
		{"layout.padding_x", o.Layout.PaddingX},
		{"layout.padding_top", o.Layout.PaddingTop},
		{"layout.padding_bottom", o.Layout.PaddingBottom},
		{"layout.kerning", o.Layout.Kerning},
		{"layout.descender", o.Layout.Descender},
		{"layout.subtitle_gap", o.Layout.SubtitleGap},
		{"layout.accent_gap", o.Layout.AccentGap},
		{"flag.gap", o.Flag.Gap},
	}
	for _, s := range spacing {
		if s.v < 0 {
			return invalidConfig("%s must not be negative, got %d", s.name, s.v)
		}
	}

	if o.Flag.Cell < 1 {
		return invalidConfig("flag.cell must be at least 1, got %d", o.Flag.Cell)
	}
	if len(o.Flag.Rows) > maxFlagSize {
		return invalidConfig("flag.rows has %d rows, max %d", len(o.Flag.Rows), maxFlagSize)
	}
	for i, row := range o.Flag.Rows {
		if utf8.RuneCountInString(row) > maxFlagSize {
			return invalidConfig("flag.rows[%d] is wider than %d cells", i, maxFlagSize)
		}
	}

	if o.Quantize.AlphaThreshold < 0 || o.Quantize.AlphaThreshold > 254 {
		return invalidConfig("quantize.alpha_threshold must be between 0 and 254, got %d", o.Quantize.AlphaThreshold)
	}
	if o.Quantize.MaxColors < 1 || o.Quantize.MaxColors > quantize.DefaultMaxColors {
		return invalidConfig("quantize.max_colors must be between 1 and %d, got %d", quantize.DefaultMaxColors, o.Quantize.MaxColors)
	}
	return nil
}

func invalidConfig(format string, args ...any) error {
	return apperrors.New(apperrors.ErrCodeInvalidConfig, format, args...)
}

func validateLine(name, s string) error {
	if !utf8.ValidString(s) {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "%s is not valid UTF-8", name)
	}
	if n := utf8.RuneCountInString(s); n > maxLineLength {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "%s too long (%d characters, max %d)", name, n, maxLineLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "%s contains invalid control characters", name)
		}
	}
	return nil
}

// ParseColor parses a hex color such as "#2ECC71", "2ECC71" or "#fff" into
// an opaque RGBA value.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return color.RGBA{}, apperrors.New(apperrors.ErrCodeInvalidColor, "invalid color %q", s)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return color.RGBA{}, apperrors.Wrap(apperrors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// LogoTexts returns the strings drawn by the renderer.
func (o *Options) LogoTexts() logo.Texts {
	return logo.Texts{Label: o.Label, Subtitle: o.Subtitle, Accent: o.Accent}
}

// LogoFeatures enables the secondary lines that have text and the flag when
// configured.
func (o *Options) LogoFeatures() logo.Features {
	return logo.Features{
		Subtitle: o.Subtitle != "",
		Accent:   o.Accent != "",
		Flag:     o.Flag.Enabled,
	}
}

// LogoTiming returns the per-step delays of the timeline.
func (o *Options) LogoTiming() logo.Timing {
	return logo.Timing{
		Typing:    o.Timing.Typing,
		Settle:    o.Timing.Settle,
		Subtitle:  o.Timing.Subtitle,
		Accent:    o.Timing.Accent,
		Sweep:     o.Timing.Sweep,
		FlagShine: o.Timing.FlagShine,
		FinalHold: o.Timing.FinalHold,
	}
}

// LogoStyle resolves colors and spacing into drawing constants.
func (o *Options) LogoStyle() (logo.Style, error) {
	s := logo.Style{
		Flag:          o.FlagGlyph(),
		FlagCell:      o.Flag.Cell,
		FlagGap:       o.Flag.Gap,
		PaddingX:      o.Layout.PaddingX,
		PaddingTop:    o.Layout.PaddingTop,
		PaddingBottom: o.Layout.PaddingBottom,
		Kerning:       o.Layout.Kerning,
		Descender:     o.Layout.Descender,
		SubtitleGap:   o.Layout.SubtitleGap,
		AccentGap:     o.Layout.AccentGap,
	}

	colors := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"colors.text", o.Colors.Text, &s.Text},
		{"colors.highlight", o.Colors.Highlight, &s.Highlight},
		{"colors.subtitle", o.Colors.Subtitle, &s.Subtitle},
		{"colors.accent", o.Colors.Accent, &s.Accent},
		{"colors.flag", o.Colors.Flag, &s.FlagColor},
		{"colors.flag_shine", o.Colors.FlagShine, &s.FlagShine},
	}
	for _, c := range colors {
		v, err := ParseColor(c.value)
		if err != nil {
			return logo.Style{}, apperrors.New(apperrors.ErrCodeInvalidColor, "%s: invalid color %q", c.name, c.value)
		}
		*c.dst = v
	}
	if o.Colors.Background != "" {
		bg, err := ParseColor(o.Colors.Background)
		if err != nil {
			return logo.Style{}, apperrors.New(apperrors.ErrCodeInvalidColor, "colors.background: invalid color %q", o.Colors.Background)
		}
		s.Background = bg
	}
	return s, nil
}

// FlagGlyph returns the configured flag drawing, or the built-in pennant.
func (o *Options) FlagGlyph() logo.Glyph {
	if len(o.Flag.Rows) == 0 {
		return logo.DefaultFlag
	}
	rows := make([]string, len(o.Flag.Rows))
	copy(rows, o.Flag.Rows)
	return logo.Glyph{Rows: rows}
}

// QuantizeSettings returns the palette conversion options.
func (o *Options) QuantizeSettings() quantize.Options {
	return quantize.Options{
		AlphaThreshold: uint8(o.Quantize.AlphaThreshold),
		MaxColors:      o.Quantize.MaxColors,
	}
}

// ArtifactKeyOpts returns the cache key options for the encoded artifact.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    FormatGIF,
		Optimize:  o.Optimize,
		LoopCount: o.LoopCount,
	}
}
