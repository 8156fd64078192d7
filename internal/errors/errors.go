// Package errors defines the structured error type used across termui.
//
// Callers build errors with a code so the CLI can tell configuration
// problems from bad arguments without string matching. The clamping paths of
// the progress bar never return errors; RANGE only comes from the opt-in
// ui.CheckRange.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes.
const (
	// ErrConfig marks unreadable, invalid or unwritable .termui.yaml files.
	ErrConfig = "CONFIG"
	// ErrRange marks a progress pair rejected by strict validation.
	ErrRange = "RANGE"
	// ErrExec marks a shell command that could not start or timed out, and
	// Bubble Tea programs that failed to run.
	ErrExec = "EXEC"
	// ErrInput marks bad flags, arguments or answers read from stdin.
	ErrInput = "INPUT"
)

// Error is a termui failure with a code, a one-line message, an optional
// cause and a hint for the user. The CLI prints it as
//
//	✗ --delay can't be negative
//
//	  Pass a positive duration such as 100ms
//
// with the cause, when present, between message and hint.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an Error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode returns an Error that keeps err as its cause.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

// NewInvalidRange reports a progress pair outside current ∈ [0, total], total ≥ 1.
func NewInvalidRange(current, total int) *Error {
	return New(ErrRange,
		fmt.Sprintf("progress %d/%d is out of range", current, total),
		"Keep total at 1 or more and current between 0 and total")
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✗ %s\n", e.Message)
	for _, detail := range []string{e.causeText(), e.Suggestion} {
		if detail != "" {
			fmt.Fprintf(&b, "\n  %s\n", detail)
		}
	}
	return b.String()
}

func (e *Error) causeText() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Error()
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first Error in err's chain, or "" when
// there is none.
func CodeOf(err error) string {
	var tuiErr *Error
	if errors.As(err, &tuiErr) {
		return tuiErr.Code
	}
	return ""
}

// IsCode reports whether err wraps an Error with code, e.g. to treat an
// INPUT mistake differently from a CONFIG problem.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
