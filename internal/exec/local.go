// Package exec runs short local shell commands and captures their output.
package exec

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/dotkit/termui/internal/errors"
)

const waitDelay = 200 * time.Millisecond

// Shell describes how a command string is handed to a shell.
type Shell struct {
	// Path is the shell binary. Empty means $SHELL, then /bin/sh.
	Path string
	// Login adds -l so the user's profile (and PATH) is loaded.
	Login bool
}

// Args returns the argv used to run cmd through the shell.
func (s Shell) Args(cmd string) []string {
	path := s.Path
	if path == "" {
		path = os.Getenv("SHELL")
	}
	if path == "" {
		path = "/bin/sh"
	}

	args := []string{path}
	if s.Login {
		args = append(args, "-l")
	}
	return append(args, "-c", cmd)
}

// Result holds captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Capture runs cmd through the shell and captures stdout and stderr.
// A non-zero exit is reported in Result.ExitCode, not as an error.
// Errors are returned when the command could not be started or the context expired.
func Capture(ctx context.Context, shell Shell, cmd string) (*Result, error) {
	argv := shell.Args(cmd)
	command := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr
	// Background children may hold the pipes open after the shell is killed.
	command.WaitDelay = waitDelay

	runErr := command.Run()
	result := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		return result, errors.WrapWithCode(ctxErr, errors.ErrExec,
			"Command didn't finish in time",
			"Raise the timeout or check that the command doesn't wait for input")
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		result.ExitCode = -1
		return result, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run the command locally",
			"Make sure the shell and command exist and are executable.")
	}

	return result, nil
}
