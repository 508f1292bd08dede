package logo

import (
	"context"
	"image"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

// MinDelay is the shortest display duration a frame can have.
const MinDelay = 1

// Frame is a rendered bitmap and its display duration in hundredths of a
// second.
type Frame struct {
	Image *image.RGBA
	Delay int
	Phase string
	State VisualState
}

// BuildSequence renders steps in order. Every frame must match the
// renderer's layout dimensions; a mismatch is a renderer defect and aborts
// the run with a DIMENSION_MISMATCH error.
func BuildSequence(ctx context.Context, r *Renderer, steps []Step) ([]Frame, error) {
	l := r.Layout()
	frames := make([]Frame, 0, len(steps))
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img := r.Render(s.State)
		if err := checkDimensions(l, img, i); err != nil {
			return nil, err
		}
		frames = append(frames, Frame{
			Image: img,
			Delay: max(MinDelay, s.Delay),
			Phase: s.Phase,
			State: s.State,
		})
	}
	return frames, nil
}

func checkDimensions(l Layout, img image.Image, index int) error {
	b := img.Bounds()
	if b.Min != (image.Point{}) || b.Dx() != l.Width || b.Dy() != l.Height {
		return apperrors.New(apperrors.ErrCodeDimensionMismatch,
			"frame %d is %dx%d at %v, layout is %dx%d", index, b.Dx(), b.Dy(), b.Min, l.Width, l.Height)
	}
	return nil
}
