package logo

import (
	"image"
	"image/color"
	"image/draw"
)

// Face is the text rasterization contract the renderer depends on.
//
// Measure returns the ink bounding box of s relative to the top-left anchor
// passed to Draw. Draw rasterizes s onto dst with its anchor at at.
type Face interface {
	Measure(s string) image.Rectangle
	Draw(dst draw.Image, at image.Point, s string, c color.Color)
}

// Faces groups the faces used for each text element.
type Faces struct {
	Main     Face
	Subtitle Face
	Accent   Face
}

// Metrics are the measurements the layout is computed from.
type Metrics struct {
	Glyphs     []int       // measured width of each label character
	TextHeight int         // extent of the label below its anchor
	Subtitle   image.Point // extent of the subtitle line (zero if absent)
	Accent     image.Point // extent of the accent line (zero if absent)
}

// Measure collects Metrics for texts. Every label character is measured on
// its own because the renderer advances glyph by glyph.
func Measure(faces Faces, texts Texts) Metrics {
	var m Metrics
	for _, r := range texts.Label {
		m.Glyphs = append(m.Glyphs, faces.Main.Measure(string(r)).Dx())
	}
	if texts.Label != "" {
		m.TextHeight = max(0, faces.Main.Measure(texts.Label).Max.Y)
	}
	if texts.Subtitle != "" && faces.Subtitle != nil {
		m.Subtitle = extent(faces.Subtitle.Measure(texts.Subtitle))
	}
	if texts.Accent != "" && faces.Accent != nil {
		m.Accent = extent(faces.Accent.Measure(texts.Accent))
	}
	return m
}

func extent(r image.Rectangle) image.Point {
	return image.Pt(max(0, r.Max.X), max(0, r.Max.Y))
}
