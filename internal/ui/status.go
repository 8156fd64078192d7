package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// Status area layout.
const (
	DefaultStatusLine = 7
	statusClearWidth  = 80
	phaseColumn       = 20
	operationColumn   = 40
)

// StatusFrame is one snapshot of a multi-line status area.
type StatusFrame struct {
	Phase     string
	Operation string
	Current   int
	Total     int
	Success   int
	Errors    int
}

// StatusDisplay redraws a fixed block of lines: phase, operation, progress
// bar and success/error counts. Each Update overwrites the block in place.
type StatusDisplay struct {
	w      io.Writer
	Width  int
	Filled rune
	Empty  rune
}

// NewStatusDisplay creates a status display writing to w.
func NewStatusDisplay(w io.Writer) *StatusDisplay {
	return &StatusDisplay{
		w:      w,
		Width:  DefaultProgressWidth,
		Filled: BarFilled,
		Empty:  BarEmpty,
	}
}

// Update redraws the status block starting at line. Lines below 1 use DefaultStatusLine.
func (d *StatusDisplay) Update(frame StatusFrame, line int) {
	if line < 1 {
		line = DefaultStatusLine
	}
	emit(d.w, d.Render(frame, line))
}

// Render returns the bytes Update writes.
func (d *StatusDisplay) Render(frame StatusFrame, line int) string {
	blank := strings.Repeat(" ", statusClearWidth) + "\r"

	var b strings.Builder
	b.WriteString(CursorToSeq(line, 1))

	b.WriteString(blank + Attr(SeqBold) + Fg(UIAccent) +
		"Phase: " + fitColumn(frame.Phase, phaseColumn) + Reset() + "\n")

	b.WriteString(blank + Fg(UIInfo) +
		"Current: " + fitColumn(frame.Operation, operationColumn) + Reset() + "\n\n")

	b.WriteString(blank + Fg(UIProgress) + "Progress: " + Reset() +
		RenderProgress(frame.Current, frame.Total, d.Width, d.Filled, d.Empty) + "\n\n\n")

	b.WriteString(blank + fmt.Sprintf("%s%s Success: %d%s  %s%s Errors: %d%s\n",
		Fg(UISuccess), EmojiSuccess, frame.Success, Reset(),
		Fg(UIError), EmojiError, frame.Errors, Reset()))

	return b.String()
}

// fitColumn truncates s to width columns with an ellipsis and pads it with spaces.
func fitColumn(s string, width int) string {
	if DisplayWidth(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	if pad := width - DisplayWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
