package logo

import "fmt"

// None marks an unset index in a [VisualState] (no highlighted character, no
// flag shine column).
const None = -1

// VisualState describes everything a single frame depicts. It is a plain
// comparable value: two states are equal iff all fields match, and equal
// states render pixel-identical bitmaps.
type VisualState struct {
	Visible   int  // number of leading label characters drawn
	Highlight int  // index of the highlighted character, or None
	Subtitle  bool // subtitle line drawn
	Accent    bool // accent line drawn
	Flag      bool // flag glyph drawn
	Shine     int  // flag column the shine is centered on, or None
}

// Blank returns the state before anything has been revealed.
func Blank() VisualState {
	return VisualState{Highlight: None, Shine: None}
}

func (s VisualState) String() string {
	return fmt.Sprintf("visible=%d highlight=%d subtitle=%t accent=%t flag=%t shine=%d",
		s.Visible, s.Highlight, s.Subtitle, s.Accent, s.Flag, s.Shine)
}

// show switches on the elements named in e.
func (s VisualState) show(e Element) VisualState {
	if e&ShowSubtitle != 0 {
		s.Subtitle = true
	}
	if e&ShowAccent != 0 {
		s.Accent = true
	}
	if e&ShowFlag != 0 {
		s.Flag = true
	}
	return s
}
