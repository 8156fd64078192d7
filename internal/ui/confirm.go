package ui

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/dotkit/termui/internal/errors"
)

// AskConfirmation prints "message [y/N]: " (or "[Y/n]: ") to out and reads one
// line from in. An empty answer or end of input returns defaultYes; "y" and
// "yes" in any case return true; anything else returns false.
func AskConfirmation(in io.Reader, out io.Writer, message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	emit(out, Fg(UIAccent)+fmt.Sprintf("%s %s: ", message, hint)+Reset())

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.WrapWithCode(err, errors.ErrInput,
			"Couldn't read the answer",
			"Run again from an interactive terminal or pipe an answer on stdin")
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// Confirm asks a yes/no question on the terminal. It shows a huh form when
// stdin is a terminal and falls back to a line prompt otherwise.
func Confirm(message string, defaultYes bool) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return AskConfirmation(os.Stdin, os.Stdout, message, defaultYes)
	}

	answer := defaultYes
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrInput,
			"Confirmation prompt failed",
			"Run again or pass the answer through stdin")
	}
	return answer, nil
}

// WaitForKeypress prints "Press Enter to continue..." on a new line and waits for a line on in.
func WaitForKeypress(in io.Reader, out io.Writer) error {
	emit(out, Fg(UIHeader)+"\nPress Enter to continue..."+Reset())
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && err != io.EOF {
		return errors.WrapWithCode(err, errors.ErrInput, "Couldn't read from input", "")
	}
	return nil
}
