package ui

import (
	"io"
	"strings"
)

// StatusKind selects the color and emoji of a status message.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusWarning StatusKind = "warning"
	StatusError   StatusKind = "error"
	StatusInfo    StatusKind = "info"
)

// ParseStatusKind maps a name to a kind. Unknown names are info.
func ParseStatusKind(name string) StatusKind {
	switch kind := StatusKind(strings.ToLower(strings.TrimSpace(name))); kind {
	case StatusSuccess, StatusWarning, StatusError:
		return kind
	default:
		return StatusInfo
	}
}

// Printer writes colored status messages. Silent drops success, warning,
// error and info messages but not plain colored output.
type Printer struct {
	w      io.Writer
	Silent bool
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Colored writes msg in color c, with no newline added.
func (p *Printer) Colored(c RGB, msg string) {
	emit(p.w, Style(c).Render(msg))
}

// StatusMessage writes "emoji msg" in color c followed by a newline.
func (p *Printer) StatusMessage(c RGB, emoji, msg string) {
	emit(p.w, Style(c).Render(emoji+" "+msg)+"\n")
}

// Success prints a green message with a check mark.
func (p *Printer) Success(msg string) {
	p.status(StatusSuccess, msg)
}

// Warning prints a yellow message with a warning sign.
func (p *Printer) Warning(msg string) {
	p.status(StatusWarning, msg)
}

// Error prints a red message with a cross.
func (p *Printer) Error(msg string) {
	p.status(StatusError, msg)
}

// Info prints a gray message with an info sign.
func (p *Printer) Info(msg string) {
	p.status(StatusInfo, msg)
}

// Status prints msg using the style for kind.
func (p *Printer) Status(kind StatusKind, msg string) {
	p.status(ParseStatusKind(string(kind)), msg)
}

func (p *Printer) status(kind StatusKind, msg string) {
	if p.Silent {
		return
	}
	switch kind {
	case StatusSuccess:
		p.StatusMessage(UISuccess, EmojiSuccess, msg)
	case StatusWarning:
		p.StatusMessage(UIWarning, EmojiWarning, msg)
	case StatusError:
		p.StatusMessage(UIError, EmojiError, msg)
	default:
		p.StatusMessage(UIInfo, EmojiInfo, msg)
	}
}
