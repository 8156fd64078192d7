package ui

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) { emit(w, CursorHideSeq) }

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) { emit(w, CursorShowSeq) }

// ClearScreen clears the screen and moves the cursor home.
func ClearScreen(w io.Writer) { emit(w, ClearScreenSeq+CursorHomeSeq) }

// ClearLine clears the current line.
func ClearLine(w io.Writer) { emit(w, ClearLineSeq) }

// MoveCursorToLine moves the cursor to column 1 of line.
func MoveCursorToLine(w io.Writer, line int) { emit(w, CursorToSeq(line, 1)) }

// MoveCursorTo moves the cursor to line and column.
func MoveCursorTo(w io.Writer, line, column int) { emit(w, CursorToSeq(line, column)) }

// SaveCursor stores the cursor position.
func SaveCursor(w io.Writer) { emit(w, CursorSaveSeq) }

// RestoreCursor returns to the stored cursor position.
func RestoreCursor(w io.Writer) { emit(w, CursorRestoreSeq) }

// Cleanup leaves the terminal usable: cursor visible, attributes reset, on a fresh line.
func Cleanup(w io.Writer) {
	ShowCursor(w)
	emit(w, "\n"+Reset())
}

// WithHiddenCursor hides the cursor while fn runs and always runs Cleanup
// afterwards, whether fn returns, fails, panics or is interrupted. The context
// passed to fn is cancelled on SIGINT or SIGTERM.
func WithHiddenCursor(ctx context.Context, w io.Writer, fn func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	HideCursor(w)
	defer Cleanup(w)

	return fn(ctx)
}
