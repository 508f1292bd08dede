package logo

import "image"

// Layout holds the canvas size and the fixed position of every drawable
// element. It is computed once per run and never modified afterwards; every
// frame of the run has exactly Width x Height pixels.
type Layout struct {
	Width  int
	Height int

	Text   image.Point // anchor of the label
	Glyphs []int       // x anchor of each label character; read-only

	Subtitle    image.Point
	Accent      image.Point
	Flag        image.Point
	HasSubtitle bool
	HasAccent   bool
	HasFlag     bool
}

// Bounds returns the canvas rectangle.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// ComputeLayout derives the Layout from measured metrics.
//
// Elements are placed left to right: outer padding, the optional flag block
// followed by the flag gap, then the text column, then outer padding. The
// text column is as wide as the widest of the label (glyph widths plus
// kerning), the subtitle and the accent line. Vertically the label occupies
// its measured height plus a fixed descender allowance, because measured
// bounding boxes underreport descenders of pixel fonts; secondary lines stack
// below at fixed gaps. The flag is centered on the label.
func ComputeLayout(m Metrics, s Style, f Features) Layout {
	l := Layout{
		HasSubtitle: f.Subtitle,
		HasAccent:   f.Accent,
		HasFlag:     f.Flag && s.Flag.Cols() > 0 && s.FlagCell > 0,
	}

	x := s.PaddingX
	top := s.PaddingTop

	var flagW, flagH int
	if l.HasFlag {
		flagW = s.Flag.Cols() * s.FlagCell
		flagH = s.Flag.Height() * s.FlagCell
		l.Flag.X = x
		x += flagW + s.FlagGap
	}

	l.Text = image.Pt(x, top)
	l.Glyphs = make([]int, len(m.Glyphs))
	cursor := x
	for i, w := range m.Glyphs {
		l.Glyphs[i] = cursor
		cursor += w + s.Kerning
	}
	column := cursor - x

	mainH := m.TextHeight + s.Descender
	stack := mainH
	if l.HasSubtitle {
		l.Subtitle = image.Pt(x, top+stack+s.SubtitleGap)
		stack += s.SubtitleGap + m.Subtitle.Y
		column = max(column, m.Subtitle.X)
	}
	if l.HasAccent {
		l.Accent = image.Pt(x, top+stack+s.AccentGap)
		stack += s.AccentGap + m.Accent.Y
		column = max(column, m.Accent.X)
	}

	content := stack
	if l.HasFlag {
		l.Flag.Y = top + max(0, (mainH-flagH)/2)
		content = max(content, l.Flag.Y-top+flagH)
	}

	l.Width = max(1, x+column+s.PaddingX)
	l.Height = max(1, top+content+s.PaddingBottom)
	return l
}
