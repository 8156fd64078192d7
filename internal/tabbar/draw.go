package tabbar

import (
	"context"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dotkit/termui/internal/ui"
)

// Glyphs drawn around tabs. The half circles are powerline symbols from a Nerd Font.
const (
	blockGlyph      = "█"
	leftRound       = "\ue0b6"
	rightRound      = "\ue0b4"
	iconTerminator  = blockGlyph + rightRound
	leftTerminator  = leftRound + blockGlyph
	rightTerminator = blockGlyph + rightRound
	lastTerminator  = " "
	overlength      = " …"
	statusPadding   = "  "
	statusSeparator = " ︙ "

	DefaultIcon        = "\U000f0627 "
	DefaultClockIcon   = "\uf017 "
	DefaultClockFormat = "15:04"
)

// DrawData carries the colors and spacing shared by every tab.
type DrawData struct {
	ActiveFG, ActiveBG     Color
	InactiveFG, InactiveBG Color
	Sep                    string
	LeadingSpaces          int
	TrailingSpaces         int
	TitleTemplate          string
}

// DefaultDrawData uses the OneDark palette.
func DefaultDrawData() DrawData {
	return DrawData{
		ActiveFG:       FromRGB(ui.OneDarkBG),
		ActiveBG:       FromRGB(ui.OneDarkGreen),
		InactiveFG:     FromRGB(ui.OneDarkFG),
		InactiveBG:     FromRGB(ui.OneDarkSelection),
		Sep:            " ",
		TrailingSpaces: 1,
		TitleTemplate:  DefaultTitleTemplate,
	}
}

// Tab is one entry of the bar.
type Tab struct {
	Title    string
	IsActive bool
}

// StatusSource supplies the battery readout.
type StatusSource interface {
	Status(ctx context.Context) string
}

// Renderer draws tabs. Zero fields fall back to defaults.
type Renderer struct {
	Icon        string
	ClockIcon   string
	ClockFormat string // time layout, e.g. "15:04"
	Now         func() time.Time
	Battery     StatusSource
}

// eraser is implemented by screens that can clear the rest of the line.
type eraser interface {
	EraseToEnd()
}

// pen is the part of the cursor each draw step restores.
type pen struct {
	fg, bg       Color
	bold, italic bool
}

func savePen(c *Cursor) pen {
	return pen{fg: c.FG, bg: c.BG, bold: c.Bold, italic: c.Italic}
}

func (p pen) restore(c *Cursor) {
	c.FG, c.BG, c.Bold, c.Italic = p.fg, p.bg, p.bold, p.italic
}

// DrawBar draws every tab in order. A maxTitleLength below 1 shares the
// screen width evenly between the tabs.
func (r *Renderer) DrawBar(ctx context.Context, dd DrawData, s Screen, tabs []Tab, maxTitleLength int) int {
	if len(tabs) == 0 {
		return s.Cursor().X
	}
	if maxTitleLength < 1 {
		maxTitleLength = max(1, (s.Columns()-2)/len(tabs))
	}
	for i, tab := range tabs {
		before := s.Cursor().X
		r.DrawTab(ctx, dd, s, tab, before, maxTitleLength, i+1, i == len(tabs)-1)
	}
	// Clear what a shortened title left behind.
	if e, ok := s.(eraser); ok {
		e.EraseToEnd()
	}
	return s.Cursor().X
}

// DrawTab draws the icon (first tab only), the tab itself and the right
// status (last tab only). before is the cursor X when the tab started; index
// is 1-based. It returns the cursor X after drawing.
func (r *Renderer) DrawTab(ctx context.Context, dd DrawData, s Screen, tab Tab, before, maxTitleLength, index int, isLast bool) int {
	r.drawIcon(dd, s, index)
	r.drawLeftStatus(dd, s, tab, before, maxTitleLength, index, isLast)
	r.drawRightStatus(ctx, dd, s, isLast)
	return s.Cursor().X
}

func (r *Renderer) drawIcon(dd DrawData, s Screen, index int) int {
	if index != 1 {
		return 0
	}
	c := s.Cursor()
	saved := savePen(c)
	defer saved.restore(c)

	c.Bold, c.Italic = true, true
	c.FG, c.BG = dd.ActiveFG, dd.InactiveBG
	s.Draw("  ")
	s.Draw(r.icon())

	c.FG, c.BG = dd.InactiveBG, DefaultColor
	s.Draw(iconTerminator)
	s.Draw(dd.Sep)

	return c.X
}

func (r *Renderer) drawLeftStatus(dd DrawData, s Screen, tab Tab, before, maxTitleLength, index int, isLast bool) int {
	c := s.Cursor()
	saved := savePen(c)
	defer saved.restore(c)

	if dd.LeadingSpaces > 0 {
		c.BG = DefaultColor
		s.Draw(strings.Repeat(" ", dd.LeadingSpaces))
	}

	fill := dd.InactiveBG
	if tab.IsActive {
		fill = dd.ActiveBG
	}
	c.FG, c.BG = fill, DefaultColor
	s.Draw(leftTerminator)

	if tab.IsActive {
		c.FG, c.BG = dd.ActiveFG, dd.ActiveBG
		c.Bold, c.Italic = true, true
	} else {
		c.FG, c.BG = dd.InactiveFG, dd.InactiveBG
	}
	s.Draw(FormatTitle(dd.TitleTemplate, tab, index, s.Columns()))

	trailing := min(maxTitleLength-1, dd.TrailingSpaces)
	maxTitleLength -= trailing
	if extra := c.X - before - maxTitleLength; extra > 0 {
		c.X -= extra + runewidth.StringWidth(overlength)
		s.Draw(overlength)
	}

	if trailing > 0 {
		c.BG = DefaultColor
		s.Draw(strings.Repeat(" ", trailing))
	}

	c.Bold, c.Italic = false, false
	c.FG, c.BG = fill, DefaultColor
	s.Draw(rightTerminator)

	if isLast {
		c.FG, c.BG = dd.InactiveBG, DefaultColor
		s.Draw(lastTerminator)
		s.Draw(" ")
	} else {
		c.FG, c.BG = dd.InactiveFG, DefaultColor
		s.Draw(dd.Sep)
	}
	return c.X
}

func (r *Renderer) drawRightStatus(ctx context.Context, dd DrawData, s Screen, isLast bool) int {
	if !isLast {
		return 0
	}
	c := s.Cursor()
	saved := savePen(c)
	defer saved.restore(c)

	cells := r.statusCells(ctx)

	// One column stays free at the right edge.
	length := 1 + runewidth.StringWidth(leftRound)
	for _, cell := range cells {
		length += runewidth.StringWidth(cell)
	}

	if spaces := s.Columns() - c.X - length; spaces > 0 {
		bg := c.BG
		c.BG = DefaultColor
		s.Draw(strings.Repeat(" ", spaces))
		c.BG = bg
	}
	if s.Columns()-c.X > length {
		c.X = s.Columns() - length
	}

	c.FG, c.BG = dd.InactiveBG, DefaultColor
	s.Draw(leftRound)

	c.FG, c.BG = dd.ActiveFG, dd.InactiveBG
	c.Bold, c.Italic = true, true
	for _, cell := range cells {
		s.Draw(cell)
	}
	return c.X
}

// statusCells returns padding, clock icon, time, separator, battery and padding.
func (r *Renderer) statusCells(ctx context.Context) []string {
	return []string{
		statusPadding,
		r.clockIcon(),
		r.Clock(),
		statusSeparator,
		r.battery(ctx),
		statusPadding,
	}
}

// Clock returns the current time in the renderer's layout.
func (r *Renderer) Clock() string {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	layout := r.ClockFormat
	if layout == "" {
		layout = DefaultClockFormat
	}
	return now().Format(layout)
}

func (r *Renderer) battery(ctx context.Context) string {
	if r.Battery == nil {
		return BatteryUnavailable
	}
	return r.Battery.Status(ctx)
}

func (r *Renderer) icon() string {
	if r.Icon == "" {
		return DefaultIcon
	}
	return r.Icon
}

func (r *Renderer) clockIcon() string {
	if r.ClockIcon == "" {
		return DefaultClockIcon
	}
	return r.ClockIcon
}
