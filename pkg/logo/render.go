package logo

import (
	"image"
	"image/draw"
)

// Renderer draws VisualStates. It holds only immutable inputs, so Render has
// no side effects and the same state always yields the same pixels.
type Renderer struct {
	layout Layout
	style  Style
	texts  Texts
	faces  Faces
	label  []rune
}

// NewRenderer returns a renderer for the given layout. The layout must have
// been computed from the same style and texts.
func NewRenderer(l Layout, s Style, t Texts, f Faces) *Renderer {
	return &Renderer{
		layout: l,
		style:  s,
		texts:  t,
		faces:  f,
		label:  []rune(t.Label),
	}
}

// Layout returns the layout the renderer draws into.
func (r *Renderer) Layout() Layout { return r.layout }

// Len returns the number of label characters.
func (r *Renderer) Len() int { return len(r.label) }

// Render draws st onto a freshly allocated canvas.
//
// Z-order is fixed: flag glyph, label characters, subtitle, accent line.
func (r *Renderer) Render(st VisualState) *image.RGBA {
	img := image.NewRGBA(r.layout.Bounds())
	if r.style.Background.A != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)
	}

	if st.Flag && r.layout.HasFlag {
		r.drawFlag(img, st.Shine)
	}

	n := min(st.Visible, len(r.label), len(r.layout.Glyphs))
	for i := 0; i < n; i++ {
		c := r.style.Text
		if i == st.Highlight {
			c = r.style.Highlight
		}
		at := image.Pt(r.layout.Glyphs[i], r.layout.Text.Y)
		r.faces.Main.Draw(img, at, string(r.label[i]), c)
	}

	if st.Subtitle && r.layout.HasSubtitle && r.faces.Subtitle != nil {
		r.faces.Subtitle.Draw(img, r.layout.Subtitle, r.texts.Subtitle, r.style.Subtitle)
	}
	if st.Accent && r.layout.HasAccent && r.faces.Accent != nil {
		r.faces.Accent.Draw(img, r.layout.Accent, r.texts.Accent, r.style.Accent)
	}
	return img
}

// drawFlag fills the flag grid. Cells within one column of shine take the
// shine color.
func (r *Renderer) drawFlag(img *image.RGBA, shine int) {
	g := r.style.Flag
	cell := r.style.FlagCell
	base := image.NewUniform(r.style.FlagColor)
	lit := image.NewUniform(r.style.FlagShine)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !g.Filled(row, col) {
				continue
			}
			var src image.Image = base
			if shine != None && abs(col-shine) <= 1 {
				src = lit
			}
			at := r.layout.Flag.Add(image.Pt(col*cell, row*cell))
			draw.Draw(img, image.Rectangle{Min: at, Max: at.Add(image.Pt(cell, cell))}, src, image.Point{}, draw.Over)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
