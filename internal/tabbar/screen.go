// Package tabbar draws a terminal tab bar onto a cell screen: a leading
// icon, one rounded block per tab and a clock and battery readout pinned to
// the right edge.
package tabbar

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/dotkit/termui/internal/ui"
)

// Color is a 24-bit cell color. The zero Color is the terminal default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// DefaultColor leaves the terminal's own color in place.
var DefaultColor = Color{}

// NewColor returns a set color.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// FromRGB converts a palette color.
func FromRGB(c ui.RGB) Color {
	return NewColor(c.R, c.G, c.B)
}

func (c Color) sequence(layer string) string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf(";%s;2;%d;%d;%d", layer, c.R, c.G, c.B)
}

// Cursor holds the drawing position and the attributes applied to drawn text.
type Cursor struct {
	FG, BG       Color
	Bold, Italic bool
	X            int
}

// Screen is a one-line drawing surface.
type Screen interface {
	Cursor() *Cursor
	// Draw writes text at the cursor with its attributes and advances X.
	Draw(text string)
	Columns() int
}

// Cell is one column of a CellScreen.
type Cell struct {
	Text         string // "" for the right half of a wide rune
	FG, BG       Color
	Bold, Italic bool

	wide bool
}

func (c Cell) sameStyle(o Cell) bool {
	return c.FG == o.FG && c.BG == o.BG && c.Bold == o.Bold && c.Italic == o.Italic
}

// CellScreen is a fixed-width Screen backed by a cell buffer. Text past the
// right edge is dropped.
type CellScreen struct {
	cursor Cursor
	cells  []Cell
	last   int // index of the last drawn cell, for zero-width runes
}

// NewCellScreen creates a blank screen of columns cells.
func NewCellScreen(columns int) *CellScreen {
	if columns < 0 {
		columns = 0
	}
	cells := make([]Cell, columns)
	for i := range cells {
		cells[i].Text = " "
	}
	return &CellScreen{cells: cells, last: -1}
}

// Cursor returns the live cursor.
func (s *CellScreen) Cursor() *Cursor { return &s.cursor }

// Columns returns the screen width.
func (s *CellScreen) Columns() int { return len(s.cells) }

// Draw writes text at the cursor.
func (s *CellScreen) Draw(text string) {
	if s.cursor.X < 0 {
		s.cursor.X = 0
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if s.last >= 0 {
				s.cells[s.last].Text += string(r)
			}
			continue
		}
		x := s.cursor.X
		if x+w > len(s.cells) {
			return
		}
		s.clearWide(x)
		if w == 2 {
			s.clearWide(x + 1)
		}

		s.cells[x] = s.styled(string(r))
		s.cells[x].wide = w == 2
		if w == 2 {
			s.cells[x+1] = s.styled("")
		}
		s.last = x
		s.cursor.X += w
	}
}

func (s *CellScreen) styled(text string) Cell {
	return Cell{
		Text:   text,
		FG:     s.cursor.FG,
		BG:     s.cursor.BG,
		Bold:   s.cursor.Bold,
		Italic: s.cursor.Italic,
	}
}

// clearWide blanks the other half of a wide rune about to be overwritten at x.
func (s *CellScreen) clearWide(x int) {
	if x >= len(s.cells) {
		return
	}
	if s.cells[x].wide && x+1 < len(s.cells) {
		s.cells[x+1].Text = " "
	}
	if s.cells[x].Text == "" && x > 0 {
		s.cells[x-1].Text = " "
		s.cells[x-1].wide = false
	}
}

// EraseToEnd blanks every cell from the cursor to the right edge.
func (s *CellScreen) EraseToEnd() {
	for x := max(s.cursor.X, 0); x < len(s.cells); x++ {
		s.cells[x] = Cell{Text: " "}
	}
}

// CellAt returns the cell in column x.
func (s *CellScreen) CellAt(x int) Cell {
	return s.cells[x]
}

// Text returns the screen contents without attributes.
func (s *CellScreen) Text() string {
	var b strings.Builder
	for _, c := range s.cells {
		b.WriteString(c.Text)
	}
	return b.String()
}

// String returns the screen contents with SGR sequences for every attribute change.
func (s *CellScreen) String() string {
	var b strings.Builder
	var current Cell
	for _, c := range s.cells {
		if c.Text == "" {
			continue
		}
		if !c.sameStyle(current) {
			b.WriteString(sgr(c))
			current = c
		}
		b.WriteString(c.Text)
	}
	if !current.sameStyle(Cell{}) {
		b.WriteString(ui.SeqReset)
	}
	return b.String()
}

func sgr(c Cell) string {
	var b strings.Builder
	b.WriteString(termenv.CSI + "0")
	if c.Bold {
		b.WriteString(";1")
	}
	if c.Italic {
		b.WriteString(";3")
	}
	b.WriteString(c.FG.sequence(termenv.Foreground))
	b.WriteString(c.BG.sequence(termenv.Background))
	b.WriteString("m")
	return b.String()
}
