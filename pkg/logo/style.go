package logo

import (
	"image/color"
	"strings"
)

// Style holds the immutable drawing constants shared by layout and rendering.
// A zero Background keeps the canvas transparent.
type Style struct {
	Text       color.RGBA
	Highlight  color.RGBA
	Subtitle   color.RGBA
	Accent     color.RGBA
	Background color.RGBA

	FlagColor color.RGBA
	FlagShine color.RGBA
	Flag      Glyph
	FlagCell  int // edge length of one flag grid cell in pixels
	FlagGap   int // horizontal gap between flag and label

	PaddingX      int
	PaddingTop    int
	PaddingBottom int
	Kerning       int // extra advance after every label glyph
	Descender     int // allowance added below the measured label height
	SubtitleGap   int
	AccentGap     int
}

// Texts are the strings drawn by the renderer. Empty secondary lines are
// never drawn.
type Texts struct {
	Label    string
	Subtitle string
	Accent   string
}

// Features selects the optional timeline members and layout elements.
type Features struct {
	Subtitle bool
	Accent   bool
	Flag     bool
}

// Glyph is a small pixel-grid drawing, one string per row. Any character
// other than '.' or ' ' marks a filled cell.
type Glyph struct {
	Rows []string
}

// DefaultFlag is a pennant on a pole.
var DefaultFlag = Glyph{Rows: []string{
	"############",
	"#########...",
	"########....",
	"#########...",
	"############",
	"#...........",
	"#...........",
	"#...........",
}}

// Cols returns the width of the widest row.
func (g Glyph) Cols() int {
	n := 0
	for _, r := range g.Rows {
		if l := len(r); l > n {
			n = l
		}
	}
	return n
}

// Height returns the number of rows.
func (g Glyph) Height() int { return len(g.Rows) }

// Filled reports whether the cell at row, col is set.
func (g Glyph) Filled(row, col int) bool {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return false
	}
	c := g.Rows[row][col]
	return c != '.' && c != ' '
}

// String renders the glyph as newline separated rows.
func (g Glyph) String() string { return strings.Join(g.Rows, "\n") }
