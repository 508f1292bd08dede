package fonts

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DPI is the resolution faces are rasterized at; at 72 DPI one point is one
// pixel.
const DPI = 72

// Face adapts a font.Face to top-left anchored measuring and drawing.
// The baseline sits one ascent below the anchor. A Face caches glyph masks
// and is not safe for concurrent use.
type Face struct {
	face   font.Face
	ascent int
}

// NewFace creates a face of the given point size from TrueType data.
func NewFace(data []byte, size float64) (*Face, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return FromFont(f, size), nil
}

// FromFont creates a face of the given point size from a parsed font.
func FromFont(f *truetype.Font, size float64) *Face {
	ff := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	return Wrap(ff)
}

// Wrap adapts an existing font.Face, such as basicfont.Face7x13.
func Wrap(ff font.Face) *Face {
	return &Face{face: ff, ascent: ff.Metrics().Ascent.Ceil()}
}

// Ascent returns the distance from the anchor to the baseline.
func (f *Face) Ascent() int { return f.ascent }

// Measure returns the ink bounds of s relative to the anchor. Strings
// without ink, such as spaces, report their advance width so that they
// still take up room.
func (f *Face) Measure(s string) image.Rectangle {
	b, advance := font.BoundString(f.face, s)
	if b.Empty() {
		return image.Rect(0, 0, advance.Ceil(), f.ascent)
	}
	return image.Rect(
		b.Min.X.Floor(), f.ascent+b.Min.Y.Floor(),
		b.Max.X.Ceil(), f.ascent+b.Max.Y.Ceil(),
	)
}

// Draw rasterizes s onto dst with its anchor at at.
func (f *Face) Draw(dst draw.Image, at image.Point, s string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(at.X, at.Y+f.ascent),
	}
	d.DrawString(s)
}
