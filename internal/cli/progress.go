package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/ui"
)

const defaultProgressDelay = 100 * time.Millisecond

type progressOptions struct {
	Total int
	Step  int
	Delay string
	Width int
	TUI   bool
}

func newProgressCmd(a *app) *cobra.Command {
	var opts progressOptions
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Drive an inline progress bar from 0 to --total",
		Long: `Advance a progress bar by --step every --delay until it reaches --total.

The bar redraws in place and only writes when the visible frame changes.
With --tui the same bar runs as a Bubble Tea program (q or ctrl+c quits).

Examples:
  termui progress
  termui progress --total 250 --step 5 --delay 20ms
  termui progress --width 30 --tui`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProgress(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.Total, "total", 100, "value at which the bar is full")
	cmd.Flags().IntVar(&opts.Step, "step", 10, "amount added per tick")
	cmd.Flags().StringVar(&opts.Delay, "delay", "", "pause between ticks (default 100ms)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "bar width in cells (default: progress.width)")
	cmd.Flags().BoolVar(&opts.TUI, "tui", false, "run as a Bubble Tea program")
	return cmd
}

func (a *app) runProgress(cmd *cobra.Command, opts progressOptions) error {
	if opts.Step < 1 {
		return errors.New(errors.ErrInput, "--step must be at least 1", "Pass a positive step such as --step 10")
	}
	delay, err := parseDuration("delay", opts.Delay, defaultProgressDelay)
	if err != nil {
		return err
	}
	width := opts.Width
	if width <= 0 {
		width = a.cfg.Progress.Width
	}

	if opts.TUI {
		m := ui.NewProgressModel(opts.Total, opts.Step, delay)
		m.Width = width
		m.Label = a.cfg.Progress.Label
		m.Filled, m.Empty = a.cfg.Progress.FilledRune(), a.cfg.Progress.EmptyRune()

		final, err := tea.NewProgram(m,
			tea.WithContext(cmd.Context()),
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
		).Run()
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrExec, "Progress display failed", "Run without --tui")
		}
		if final.(ui.ProgressModel).Cancelled() {
			return &exitCodeError{code: 130}
		}
		return nil
	}

	out := cmd.OutOrStdout()
	bar := ui.NewProgressCache(out,
		ui.WithProgressWidth(width),
		ui.WithProgressChars(a.cfg.Progress.FilledRune(), a.cfg.Progress.EmptyRune()),
		ui.WithProgressLabel(a.cfg.Progress.Label),
		ui.WithProgressLogger(a.log),
	)

	ctx, stop := interruptContext(cmd)
	defer stop()

	return ui.WithHiddenCursor(ctx, out, func(ctx context.Context) error {
		return countUp(ctx, bar, opts.Total, opts.Step, delay)
	})
}

// countUp updates bar from 0 to total in steps, pausing delay between updates.
func countUp(ctx context.Context, bar *ui.ProgressCache, total, step int, delay time.Duration) error {
	for current := 0; ; current += step {
		bar.Update(current, total)
		if current >= total {
			return nil
		}
		if delay <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
