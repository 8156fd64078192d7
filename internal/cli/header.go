package cli

import (
	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/ui"
)

func newHeaderCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "header TITLE [SUBTITLE]",
		Short: "Draw a double-line header box",
		Long: `Draw TITLE (and an optional SUBTITLE) centered in a double-line box.

Examples:
  termui header "Release 2.4"
  termui header "Backup" "nightly run" --width 60`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := ui.HeaderInfo{Title: args[0], Width: width}
			if len(args) > 1 {
				info.Subtitle = args[1]
			}
			if info.Width <= 0 {
				info.Width = a.cfg.UI.HeaderWidth
			}
			ui.PrintHeader(cmd.OutOrStdout(), info)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "box width (default: ui.header_width)")
	return cmd
}

func newBoxCmd(a *app) *cobra.Command {
	var padding int
	cmd := &cobra.Command{
		Use:   "box TEXT",
		Short: "Draw TEXT inside a single-line box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.PrintBox(cmd.OutOrStdout(), args[0], padding)
			return nil
		},
	}
	cmd.Flags().IntVar(&padding, "padding", 2, "spaces on each side of the text")
	return cmd
}
