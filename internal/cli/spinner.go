package cli

import (
	"context"
	stderrors "errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/exec"
	"github.com/dotkit/termui/internal/ui"
)

type spinnerOptions struct {
	Duration string
	Interval string
	Run      string
	TUI      bool
}

func newSpinnerCmd(a *app) *cobra.Command {
	var opts spinnerOptions
	cmd := &cobra.Command{
		Use:   "spinner MESSAGE",
		Short: "Show a spinner next to MESSAGE for a fixed time",
		Long: `Animate a braille spinner beside MESSAGE, then replace it with a check mark.

ctrl+c stops early and marks the line with a cross.

With --run the spinner lasts as long as the shell command does and ends with a
check mark or a cross. A failing command's output is printed and its exit
code becomes termui's.

Examples:
  termui spinner "Fetching index"
  termui spinner "Building" --run "make build"
  termui spinner "Warming cache" --duration 5s --interval 80ms
  termui spinner "Waiting" --tui`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSpinner(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Duration, "duration", "", "how long to spin (default: spinner.duration)")
	cmd.Flags().StringVar(&opts.Interval, "interval", "", "time per frame (default: spinner.interval)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "shell command to wait for instead of a fixed duration")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "run as a Bubble Tea program")
	return cmd
}

func (a *app) runSpinner(cmd *cobra.Command, message string, opts spinnerOptions) error {
	duration, err := parseDuration("duration", opts.Duration, a.cfg.Spinner.Duration)
	if err != nil {
		return err
	}
	interval, err := parseDuration("interval", opts.Interval, a.cfg.Spinner.Interval)
	if err != nil {
		return err
	}

	if opts.Run != "" {
		return a.runSpinnerCommand(cmd, message, opts.Run, interval)
	}

	if opts.TUI {
		final, err := tea.NewProgram(ui.NewTimedSpinnerModel(message, duration, interval),
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec, "Spinner display failed", "Run without --tui")
		}
		if final.(ui.TimedSpinnerModel).Cancelled() {
			return &exitCodeError{code: 130}
		}
		return nil
	}

	ctx, stop := interruptContext(cmd)
	defer stop()
	return ui.RunSpinner(ctx, cmd.OutOrStdout(), message, duration, interval)
}

// runSpinnerCommand animates a spinner while command runs through $SHELL.
func (a *app) runSpinnerCommand(cmd *cobra.Command, message, command string, interval time.Duration) error {
	ctx, stop := interruptContext(cmd)
	defer stop()

	sp := ui.NewSpinner(cmd.OutOrStdout(), message)
	sp.SetInterval(interval)
	sp.Start()

	res, err := exec.Capture(ctx, exec.Shell{}, command)
	switch {
	case err != nil:
		sp.Fail()
		if stderrors.Is(ctx.Err(), context.Canceled) {
			return ctx.Err()
		}
		return err
	case res.ExitCode != 0:
		sp.Fail()
		a.log.Debug("%q exited %d", command, res.ExitCode)
		errOut := cmd.ErrOrStderr()
		_, _ = errOut.Write(res.Stdout)
		_, _ = errOut.Write(res.Stderr)
		return &exitCodeError{code: res.ExitCode}
	}
	sp.Success()
	return nil
}
