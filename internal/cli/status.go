package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/ui"
)

type statusOptions struct {
	Frame ui.StatusFrame
	Line  int
	Kind  string
}

func newStatusCmd(a *app) *cobra.Command {
	var opts statusOptions
	cmd := &cobra.Command{
		Use:   "status [MESSAGE]",
		Short: "Draw the status block, or print one status message",
		Long: `Without MESSAGE, draw the multi-line status block (phase, operation,
progress bar and counts) starting at --line.

With MESSAGE, print a single status line of --kind (success, warning, error
or info).

Examples:
  termui status --phase Build --operation "compile" --current 3 --total 8 --success 3
  termui status "Backup finished" --kind success`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.printer(cmd).Status(ui.ParseStatusKind(opts.Kind), args[0])
				return nil
			}
			d := ui.NewStatusDisplay(cmd.OutOrStdout())
			d.Width = a.cfg.Progress.Width
			d.Filled, d.Empty = a.cfg.Progress.FilledRune(), a.cfg.Progress.EmptyRune()
			d.Update(opts.Frame, opts.Line)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Frame.Phase, "phase", "", "current phase")
	f.StringVar(&opts.Frame.Operation, "operation", "", "current operation")
	f.IntVar(&opts.Frame.Current, "current", 0, "progress so far")
	f.IntVar(&opts.Frame.Total, "total", 100, "progress total")
	f.IntVar(&opts.Frame.Success, "success", 0, "success count")
	f.IntVar(&opts.Frame.Errors, "errors", 0, "error count")
	f.IntVar(&opts.Line, "line", ui.DefaultStatusLine, "screen line where the block starts")
	f.StringVar(&opts.Kind, "kind", string(ui.StatusInfo), "message kind: success, warning, error, info")
	return cmd
}
