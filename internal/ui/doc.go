// Package ui provides the terminal output building blocks of termui.
//
// The package includes an inline progress bar with a redraw cache, spinners,
// headers and boxes, colored status messages, confirmation prompts and a
// multi-line status display.
//
// # Components Overview
//
//	ProgressCache   - Inline progress bar that writes only when the frame changes
//	Spinner         - Background spinner for work of unknown length
//	RunSpinner      - Blocking spinner for a fixed duration
//	Printer         - Success, warning, error and info messages
//	StatusDisplay   - Fixed block with phase, operation, bar and counts
//	ProgressModel   - Bubble Tea program driving a bar
//
// # Colors
//
// Colors come from the OneDark palette as RGB values. Fg and Bg produce the
// escape sequence for the active termenv profile: exact 24-bit codes on true
// color terminals, the nearest ANSI or 256-color code elsewhere, and nothing
// at all after DisableColors (for --no-color and NO_COLOR).
//
// # Progress Cache
//
// A ProgressCache remembers the last frame it wrote. Update compares the new
// numbers and then the rendered string against it and skips the write when
// nothing visible changed:
//
//	bar := ui.NewProgressCache(os.Stdout, ui.WithProgressWidth(40))
//	for i := 0; i <= total; i++ {
//		bar.Update(i, total)
//	}
//	bar.Finish()
//
// Call ResetCache when other output may have moved the cursor since the last
// redraw.
//
// # Cursor Scope
//
// WithHiddenCursor hides the cursor around a function and restores the
// terminal on return, panic, SIGINT or SIGTERM.
package ui
