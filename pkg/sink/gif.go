package sink

import (
	"bytes"
	"image"
	"image/gif"
	"io"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

// Frame is one paletted image and how long it is shown.
type Frame struct {
	Image       *image.Paletted
	Delay       int // centiseconds
	Transparent uint8
}

// GIFOption configures GIF encoding.
type GIFOption func(*gifEncoder)

type gifEncoder struct {
	optimize  bool
	loopCount int
}

// WithOptimize crops each frame to the bounding box of its opaque pixels.
func WithOptimize(v bool) GIFOption {
	return func(e *gifEncoder) { e.optimize = v }
}

// WithLoopCount sets the loop count (0 loops forever).
func WithLoopCount(n int) GIFOption {
	return func(e *gifEncoder) { e.loopCount = n }
}

// RenderGIF encodes frames and returns the GIF bytes.
func RenderGIF(frames []Frame, opts ...GIFOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeGIF writes frames to w in order as an animated GIF.
// All frames must share the bounds of the first one.
func EncodeGIF(w io.Writer, frames []Frame, opts ...GIFOption) error {
	e := gifEncoder{}
	for _, opt := range opts {
		opt(&e)
	}

	if len(frames) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "no frames to encode")
	}

	canvas := frames[0].Image.Bounds()
	g := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		Disposal:  make([]byte, len(frames)),
		LoopCount: e.loopCount,
		Config: image.Config{
			Width:  canvas.Dx(),
			Height: canvas.Dy(),
		},
		BackgroundIndex: frames[0].Transparent,
	}

	for i, f := range frames {
		if f.Image == nil {
			return apperrors.New(apperrors.ErrCodeInvalidInput, "frame %d has no image", i)
		}
		if b := f.Image.Bounds(); b != canvas {
			return apperrors.New(apperrors.ErrCodeDimensionMismatch,
				"frame %d is %dx%d, canvas is %dx%d", i, b.Dx(), b.Dy(), canvas.Dx(), canvas.Dy())
		}
		img := rebase(f.Image, canvas.Min)
		if e.optimize {
			img = crop(img, f.Transparent)
		}
		g.Image[i] = img
		g.Delay[i] = delayUnits(f.Delay)
		g.Disposal[i] = gif.DisposalBackground
	}

	if err := gif.EncodeAll(w, g); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode gif")
	}
	return nil
}

// delayUnits converts centiseconds to GIF delay units, clamped to at least one.
// The units coincide; the clamp keeps viewers from substituting their own
// default for a zero delay.
func delayUnits(cs int) int {
	if cs < 1 {
		return 1
	}
	return cs
}

// rebase translates img so that origin maps to (0, 0).
func rebase(img *image.Paletted, origin image.Point) *image.Paletted {
	if origin == (image.Point{}) {
		return img
	}
	out := *img
	out.Rect = img.Rect.Sub(origin)
	return &out
}

// crop returns the sub-image covering every pixel that is not transparent.
// A fully transparent frame becomes a single transparent pixel at the origin
// of its bounds.
func crop(img *image.Paletted, transparent uint8) *image.Paletted {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.ColorIndexAt(x, y) == transparent {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return img.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+1, b.Min.Y+1)).(*image.Paletted)
	}
	return img.SubImage(image.Rect(minX, minY, maxX+1, maxY+1)).(*image.Paletted)
}
