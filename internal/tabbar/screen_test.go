package tabbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotkit/termui/internal/ui"
)

func TestCellScreenDraw(t *testing.T) {
	s := NewCellScreen(6)

	s.Draw("ab")

	assert.Equal(t, 2, s.Cursor().X)
	assert.Equal(t, "ab    ", s.Text())
	assert.Equal(t, 6, s.Columns())
}

func TestCellScreenWideRunes(t *testing.T) {
	s := NewCellScreen(6)

	s.Draw("a日b")

	assert.Equal(t, 4, s.Cursor().X)
	assert.Equal(t, "a日b  ", s.Text())
	assert.Equal(t, "", s.CellAt(2).Text, "right half of a wide rune")
}

func TestCellScreenOverwriteHalfOfWideRune(t *testing.T) {
	s := NewCellScreen(4)
	s.Draw("日本")

	s.Cursor().X = 1
	s.Draw("x")

	assert.Equal(t, " x本", s.Text())
}

func TestCellScreenClipsAtRightEdge(t *testing.T) {
	s := NewCellScreen(3)

	s.Draw("abcdef")
	assert.Equal(t, "abc", s.Text())
	assert.Equal(t, 3, s.Cursor().X)

	s.Cursor().X = 2
	s.Draw("日")
	assert.Equal(t, "abc", s.Text(), "a wide rune that doesn't fit is dropped")
}

func TestCellScreenNegativeCursor(t *testing.T) {
	s := NewCellScreen(3)
	s.Cursor().X = -4

	s.Draw("z")

	assert.Equal(t, "z  ", s.Text())
}

func TestCellScreenZeroWidthJoinsPreviousCell(t *testing.T) {
	s := NewCellScreen(3)

	s.Draw("e\u0301x")

	assert.Equal(t, "e\u0301", s.CellAt(0).Text)
	assert.Equal(t, 2, s.Cursor().X)
}

func TestCellScreenAttributes(t *testing.T) {
	s := NewCellScreen(3)
	c := s.Cursor()
	c.FG = NewColor(1, 2, 3)
	c.BG = FromRGB(ui.OneDarkBG)
	c.Italic = true

	s.Draw("a")

	cell := s.CellAt(0)
	assert.Equal(t, NewColor(1, 2, 3), cell.FG)
	assert.Equal(t, NewColor(40, 44, 52), cell.BG)
	assert.True(t, cell.Italic)
	assert.False(t, cell.Bold)
	assert.Equal(t, DefaultColor, s.CellAt(1).FG)
}

func TestCellScreenString(t *testing.T) {
	s := NewCellScreen(3)
	s.Cursor().FG = NewColor(1, 2, 3)
	s.Cursor().Bold = true

	s.Draw("ab")

	assert.Equal(t, "\x1b[0;1;38;2;1;2;3mab\x1b[0m ", s.String())
}

func TestCellScreenStringResetsAtEnd(t *testing.T) {
	s := NewCellScreen(2)
	s.Cursor().BG = NewColor(9, 9, 9)

	s.Draw("ok")

	assert.Equal(t, "\x1b[0;48;2;9;9;9mok\x1b[0m", s.String())
}

func TestCellScreenEraseToEnd(t *testing.T) {
	s := NewCellScreen(5)
	s.Draw("hello")

	s.Cursor().X = 2
	s.EraseToEnd()

	assert.Equal(t, "he   ", s.Text())
}

func TestColorSet(t *testing.T) {
	assert.False(t, DefaultColor.Set)
	assert.True(t, NewColor(0, 0, 0).Set)
	assert.Equal(t, NewColor(152, 195, 121), FromRGB(ui.OneDarkGreen))
}
