package logo

import (
	"bytes"
	"image/color"
	"testing"
)

func newTestRenderer(f Features) *Renderer {
	s, faces, texts := testStyle(), testFaces(), testTexts()
	l := ComputeLayout(Measure(faces, texts), s, f)
	return NewRenderer(l, s, texts, faces)
}

func TestRenderDeterministic(t *testing.T) {
	r := newTestRenderer(Features{Subtitle: true, Accent: true, Flag: true})

	states := []VisualState{
		Blank(),
		{Visible: 3, Highlight: 2, Shine: None},
		{Visible: 7, Highlight: None, Subtitle: true, Accent: true, Flag: true, Shine: 4},
	}
	for _, st := range states {
		a := r.Render(st)
		b := r.Render(st)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("Render(%v) is not deterministic", st)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	r := newTestRenderer(Features{Subtitle: true, Flag: true})
	l := r.Layout()

	img := r.Render(Blank())
	if img.Bounds() != l.Bounds() {
		t.Errorf("Bounds = %v, want %v", img.Bounds(), l.Bounds())
	}
}

func TestRenderTransparentBackground(t *testing.T) {
	r := newTestRenderer(Features{})
	img := r.Render(Blank())
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("blank frame has opaque pixel at byte %d", i)
		}
	}
}

func TestRenderOpaqueBackground(t *testing.T) {
	s, faces, texts := testStyle(), testFaces(), testTexts()
	s.Background = color.RGBA{R: 10, G: 14, B: 23, A: 255}
	r := NewRenderer(ComputeLayout(Measure(faces, texts), s, Features{}), s, texts, faces)

	img := r.Render(Blank())
	if got := img.RGBAAt(0, 0); got != s.Background {
		t.Errorf("corner = %v, want background %v", got, s.Background)
	}
}

func TestRenderHighlight(t *testing.T) {
	r := newTestRenderer(Features{})
	l := r.Layout()
	img := r.Render(VisualState{Visible: 2, Highlight: 1, Shine: None})

	y := l.Text.Y + 1
	if got := img.RGBAAt(l.Glyphs[0]+1, y); got != red {
		t.Errorf("glyph 0 = %v, want text color %v", got, red)
	}
	if got := img.RGBAAt(l.Glyphs[1]+1, y); got != green {
		t.Errorf("glyph 1 = %v, want highlight color %v", got, green)
	}
	if got := img.RGBAAt(l.Glyphs[2]+1, y); got.A != 0 {
		t.Errorf("glyph 2 should not be drawn, got %v", got)
	}
}

func TestRenderSecondaryLines(t *testing.T) {
	r := newTestRenderer(Features{Subtitle: true, Accent: true})
	l := r.Layout()

	hidden := r.Render(VisualState{Visible: 7, Highlight: None, Shine: None})
	if got := hidden.RGBAAt(l.Subtitle.X+1, l.Subtitle.Y+1); got.A != 0 {
		t.Errorf("subtitle drawn without flag: %v", got)
	}

	shown := r.Render(VisualState{Visible: 7, Highlight: None, Subtitle: true, Accent: true, Shine: None})
	if got := shown.RGBAAt(l.Subtitle.X+1, l.Subtitle.Y+1); got != gray {
		t.Errorf("subtitle = %v, want %v", got, gray)
	}
	if got := shown.RGBAAt(l.Accent.X+1, l.Accent.Y+1); got != gold {
		t.Errorf("accent = %v, want %v", got, gold)
	}
}

func TestRenderFlagShine(t *testing.T) {
	r := newTestRenderer(Features{Flag: true})
	l := r.Layout()
	cell := testStyle().FlagCell

	// Row 0 of DefaultFlag is fully filled.
	at := func(col int) (int, int) { return l.Flag.X + col*cell + 1, l.Flag.Y + 1 }

	img := r.Render(VisualState{Flag: true, Highlight: None, Shine: 4})
	for col := 0; col < DefaultFlag.Cols(); col++ {
		want := white
		if col >= 3 && col <= 5 {
			want = blue
		}
		if got := img.RGBAAt(at(col)); got != want {
			t.Errorf("col %d = %v, want %v", col, got, want)
		}
	}

	noShine := r.Render(VisualState{Flag: true, Highlight: None, Shine: None})
	if got := noShine.RGBAAt(at(4)); got != white {
		t.Errorf("unlit flag col 4 = %v, want %v", got, white)
	}

	hidden := r.Render(Blank())
	if got := hidden.RGBAAt(at(0)); got.A != 0 {
		t.Errorf("flag drawn while hidden: %v", got)
	}
}

func TestRenderVisibleClamped(t *testing.T) {
	r := newTestRenderer(Features{})
	// Visible beyond the label length must not panic.
	_ = r.Render(VisualState{Visible: 100, Highlight: 50, Shine: None})
}
