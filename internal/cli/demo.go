package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/ui"
)

func newDemoCmd(a *app) *cobra.Command {
	var delay string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Show every component once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDuration("delay", delay, defaultProgressDelay)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := a.printer(cmd)

			ui.PrintHeader(out, ui.HeaderInfo{Title: "Terminal UI Library Demo", Width: a.cfg.UI.HeaderWidth})

			ui.PrintSectionHeader(out, "Status Messages")
			p.Success("Operation completed successfully")
			p.Warning("This is a warning message")
			p.Error("This is an error message")
			p.Info("This is an info message")

			ui.PrintSectionHeader(out, "Progress Bar")
			bar := ui.NewProgressCache(out,
				ui.WithProgressWidth(a.cfg.Progress.Width),
				ui.WithProgressChars(a.cfg.Progress.FilledRune(), a.cfg.Progress.EmptyRune()),
				ui.WithProgressLabel(a.cfg.Progress.Label),
				ui.WithProgressLogger(a.log),
			)
			ctx, stop := interruptContext(cmd)
			defer stop()
			if err := countUp(ctx, bar, 100, 10, d); err != nil {
				bar.Finish()
				return err
			}
			bar.Finish()

			ui.PrintSectionHeader(out, "Box")
			ui.PrintBox(out, "This text is in a box!", 2)

			ui.PrintSectionHeader(out, "Centered Text")
			fmt.Fprint(out, ui.RenderCentered("This text is centered", 60, ui.UIAccent))

			ui.PrintSeparator(out, ui.DividerWidth, "─")
			fmt.Fprintln(out, ui.Fg(ui.UISuccess)+ui.SymbolSuccess+" Demo complete!"+ui.Reset())
			return nil
		},
	}
	cmd.Flags().StringVar(&delay, "delay", "", "pause between progress ticks (default 100ms)")
	return cmd
}
