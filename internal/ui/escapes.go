package ui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Text attributes.
const (
	SeqReset     = termenv.CSI + "0m"
	SeqBold      = termenv.CSI + "1m"
	SeqDim       = termenv.CSI + "2m"
	SeqItalic    = termenv.CSI + "3m"
	SeqUnderline = termenv.CSI + "4m"
)

// Cursor control.
const (
	CursorHideSeq    = termenv.CSI + "?25l"
	CursorShowSeq    = termenv.CSI + "?25h"
	CursorHomeSeq    = termenv.CSI + "H"
	CursorSaveSeq    = termenv.CSI + "s"
	CursorRestoreSeq = termenv.CSI + "u"
)

// Screen control.
const (
	ClearScreenSeq  = termenv.CSI + "2J"
	ClearLineSeq    = termenv.CSI + "2K"
	ClearToEndSeq   = termenv.CSI + "0J"
	ClearToStartSeq = termenv.CSI + "1J"
)

// Basic ANSI foregrounds for terminals without 24-bit color.
const (
	ANSIBlack   = termenv.CSI + "30m"
	ANSIRed     = termenv.CSI + "31m"
	ANSIGreen   = termenv.CSI + "32m"
	ANSIYellow  = termenv.CSI + "33m"
	ANSIBlue    = termenv.CSI + "34m"
	ANSIMagenta = termenv.CSI + "35m"
	ANSICyan    = termenv.CSI + "36m"
	ANSIWhite   = termenv.CSI + "37m"
)

// CursorToSeq moves the cursor to a 1-based line and column.
func CursorToSeq(line, column int) string {
	return fmt.Sprintf("%s%d;%dH", termenv.CSI, line, column)
}
