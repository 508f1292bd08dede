package quantize

import (
	"image"
	"image/color"

	mediancut "github.com/ericpauley/go-quantize/quantize"
)

// entry is one distinct opaque color and its pixel count.
type entry struct {
	key uint32
	n   int
}

func (e entry) rgba() color.RGBA {
	return color.RGBA{R: uint8(e.key >> 16), G: uint8(e.key >> 8), B: uint8(e.key), A: 255}
}

// reduce builds a palette of at most limit opaque colors for entries.
//
// Entries are laid out as a one-row image, one pixel per distinct color in
// key order, and weighted by their pixel counts, so the median cut sees the
// same histogram as the frame and identical frames get identical palettes.
func reduce(entries []entry, limit int) []color.RGBA {
	swatch := image.NewRGBA(image.Rect(0, 0, len(entries), 1))
	for i, e := range entries {
		swatch.SetRGBA(i, 0, e.rgba())
	}

	q := mediancut.MedianCutQuantizer{
		Aggregation: mediancut.Mean,
		Weighting: func(_ image.Image, x, _ int) uint32 {
			return uint32(entries[x].n)
		},
	}
	pal := q.Quantize(make(color.Palette, 0, limit), swatch)

	colors := make([]color.RGBA, len(pal))
	for i, c := range pal {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		rgba.A = 255
		colors[i] = rgba
	}
	return colors
}
