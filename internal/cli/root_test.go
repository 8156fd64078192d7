package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotkit/termui/internal/logger"
	"github.com/dotkit/termui/internal/ui"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

// runCLI runs the full command tree in an empty working directory and home,
// with colors off.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return runInDir(t, t.TempDir(), stdin, args...)
}

// runInDir runs the command tree from dir, keeping the current HOME.
func runInDir(t *testing.T, dir, stdin string, args ...string) cliResult {
	t.Helper()
	t.Chdir(dir)

	profile := ui.ColorProfile()
	prevLog := logger.Default()
	t.Cleanup(func() {
		ui.SetColorProfile(profile)
		logger.SetDefault(prevLog)
	})

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	code := run(root, append([]string{"--no-color"}, args...))
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unknown command error", errors.New(`unknown command "foo" for "termui"`), true},
		{"unknown flag error", errors.New(`unknown flag: --foo`), true},
		{"unknown shorthand", errors.New(`unknown shorthand flag: 'z' in -z`), true},
		{"other error", errors.New("battery command failed"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestRunUnknownCommand(t *testing.T) {
	res := runCLI(t, "", "frobnicate")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `unknown command "frobnicate"`)
	assert.Contains(t, res.stderr, "termui --help")
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"exit code error", &exitCodeError{code: 3}, 3},
		{"wrapped exit code", fmt.Errorf("wrapped: %w", &exitCodeError{code: 1}), 1},
		{"cancelled", context.Canceled, 130},
		{"plain error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			root.AddCommand(newFailingCmd(tt.err))
			var stderr bytes.Buffer
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&stderr)

			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())
			profile := ui.ColorProfile()
			t.Cleanup(func() { ui.SetColorProfile(profile) })

			assert.Equal(t, tt.want, run(root, []string{"--no-color", "fail"}))
			if tt.want == 130 {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestRunPlainErrorIsPrinted(t *testing.T) {
	root := NewRootCmd()
	root.AddCommand(newFailingCmd(errors.New("boom")))
	var stderr bytes.Buffer
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&stderr)

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	profile := ui.ColorProfile()
	t.Cleanup(func() { ui.SetColorProfile(profile) })

	require.Equal(t, 1, run(root, []string{"--no-color", "fail"}))
	assert.Equal(t, "✗ boom\n", stderr.String())
}

func TestRunBadLogLevel(t *testing.T) {
	res := runCLI(t, "", "--log-level", "loud", "colors")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "'loud' isn't a log level")
}

func TestRunBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  width: -4\n"), 0o644))

	res := runCLI(t, "", "--config", path, "colors")

	assert.Equal(t, 1, res.code)
	assert.NotEmpty(t, res.stderr)
}

func newFailingCmd(err error) *cobra.Command {
	return &cobra.Command{
		Use:  "fail",
		RunE: func(*cobra.Command, []string) error { return err },
	}
}
