package logo

import (
	"context"
	"errors"
	"image"
	"testing"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

func TestBuildSequence(t *testing.T) {
	f := Features{Subtitle: true, Accent: true, Flag: true}
	r := newTestRenderer(f)
	phases := DefaultTimeline(testTiming(), f)
	steps := Expand(phases, r.Len(), DefaultFlag.Cols())

	frames, err := BuildSequence(context.Background(), r, steps)
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	if len(frames) != len(steps) {
		t.Fatalf("len(frames) = %d, want %d", len(frames), len(steps))
	}

	l := r.Layout()
	total := 0
	for i, fr := range frames {
		if b := fr.Image.Bounds(); b.Dx() != l.Width || b.Dy() != l.Height {
			t.Errorf("frame %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), l.Width, l.Height)
		}
		if fr.State != steps[i].State || fr.Phase != steps[i].Phase {
			t.Errorf("frame %d out of order: %v/%s", i, fr.State, fr.Phase)
		}
		total += fr.Delay
	}
	if want := TotalDuration(phases, r.Len(), DefaultFlag.Cols()); total != want {
		t.Errorf("total delay = %d, want %d", total, want)
	}
}

func TestBuildSequenceMinDelay(t *testing.T) {
	r := newTestRenderer(Features{})
	frames, err := BuildSequence(context.Background(), r, []Step{{Phase: "x", State: Blank(), Delay: 0}})
	if err != nil {
		t.Fatalf("BuildSequence: %v", err)
	}
	if frames[0].Delay != MinDelay {
		t.Errorf("Delay = %d, want %d", frames[0].Delay, MinDelay)
	}
}

func TestBuildSequenceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRenderer(Features{})
	_, err := BuildSequence(ctx, r, []Step{{State: Blank(), Delay: 1}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCheckDimensions(t *testing.T) {
	l := Layout{Width: 10, Height: 5}

	if err := checkDimensions(l, image.NewRGBA(image.Rect(0, 0, 10, 5)), 0); err != nil {
		t.Errorf("matching frame rejected: %v", err)
	}

	bad := []image.Rectangle{
		image.Rect(0, 0, 11, 5),
		image.Rect(0, 0, 10, 4),
		image.Rect(1, 1, 11, 6),
	}
	for _, b := range bad {
		err := checkDimensions(l, image.NewRGBA(b), 3)
		if !apperrors.Is(err, apperrors.ErrCodeDimensionMismatch) {
			t.Errorf("checkDimensions(%v) = %v, want DIMENSION_MISMATCH", b, err)
		}
	}
}
