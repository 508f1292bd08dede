// Package quantize converts full-color frames with alpha into paletted
// images with a single reserved transparent index.
//
// Alpha is thresholded rather than blended: a pixel whose alpha is at or
// below [Options.AlphaThreshold] becomes transparent, anything above becomes
// fully opaque. Antialiased glyph edges therefore end in a hard edge, which
// is the only thing a GIF can express.
//
// The opaque colors of a frame are kept exactly when they fit in
// [Options.MaxColors] palette entries. Otherwise a pixel-weighted median cut
// reduces them and [Result.Degraded] is set; quantization never fails.
package quantize

import (
	"image"
	"image/color"
	"sort"
)

const (
	// DefaultAlphaThreshold is the highest alpha still treated as transparent.
	DefaultAlphaThreshold = 128

	// DefaultMaxColors leaves the 256th palette slot for transparency.
	DefaultMaxColors = 255
)

// Transparent is the color stored at the reserved index.
var Transparent = color.RGBA{}

// Options configures quantization.
type Options struct {
	AlphaThreshold uint8
	MaxColors      int
}

// DefaultOptions returns the default threshold and color ceiling.
func DefaultOptions() Options {
	return Options{AlphaThreshold: DefaultAlphaThreshold, MaxColors: DefaultMaxColors}
}

func (o Options) maxColors() int {
	if o.MaxColors <= 0 || o.MaxColors > DefaultMaxColors {
		return DefaultMaxColors
	}
	return o.MaxColors
}

// Result is a quantized frame.
type Result struct {
	Image *image.Paletted

	// Transparent is the reserved index: always the last palette entry, and
	// the only entry with zero alpha.
	Transparent uint8

	// Colors is the number of distinct opaque colors in the source frame.
	Colors int

	// Degraded reports that Colors exceeded the palette ceiling and colors
	// were approximated.
	Degraded bool
}

// Quantize converts img into a paletted image.
func Quantize(img image.Image, opts Options) Result {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	keys := make([]uint32, w*h)
	opaque := make([]bool, w*h)
	hist := make(map[uint32]int)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := straight(img, b.Min.X+x, b.Min.Y+y)
			if c.A <= opts.AlphaThreshold {
				continue
			}
			k := key(c.R, c.G, c.B)
			i := y*w + x
			keys[i] = k
			opaque[i] = true
			hist[k]++
		}
	}

	distinct := make([]entry, 0, len(hist))
	for k, n := range hist {
		distinct = append(distinct, entry{key: k, n: n})
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i].key < distinct[j].key })

	limit := opts.maxColors()
	var colors []color.RGBA
	degraded := len(distinct) > limit
	if degraded {
		colors = reduce(distinct, limit)
	} else {
		colors = make([]color.RGBA, len(distinct))
		for i, e := range distinct {
			colors[i] = e.rgba()
		}
	}

	pal := make(color.Palette, 0, len(colors)+1)
	for _, c := range colors {
		pal = append(pal, c)
	}
	pal = append(pal, Transparent)
	transparent := uint8(len(pal) - 1)

	lookup := make(map[uint32]uint8, len(distinct))
	if !degraded {
		for i, e := range distinct {
			lookup[e.key] = uint8(i)
		}
	}

	dst := image.NewPaletted(b, pal)
	for y := 0; y < h; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range row {
			i := y*w + x
			if !opaque[i] {
				row[x] = transparent
				continue
			}
			idx, ok := lookup[keys[i]]
			if !ok {
				idx = nearest(colors, keys[i])
				lookup[keys[i]] = idx
			}
			row[x] = idx
		}
	}

	return Result{
		Image:       dst,
		Transparent: transparent,
		Colors:      len(distinct),
		Degraded:    degraded,
	}
}

// straight returns the non-premultiplied color at x, y.
func straight(img image.Image, x, y int) color.NRGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return color.NRGBAModel.Convert(rgba.RGBAAt(x, y)).(color.NRGBA)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func key(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func nearest(colors []color.RGBA, k uint32) uint8 {
	r, g, b := int(k>>16&0xff), int(k>>8&0xff), int(k&0xff)
	best, bestDist := 0, -1
	for i, c := range colors {
		dr, dg, db := r-int(c.R), g-int(c.G), b-int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}
