package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/ui"
)

func newColorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Show the OneDark palette and semantic colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ui.PrintSectionHeader(out, "Palette")
			for _, e := range ui.Palette() {
				fmt.Fprintf(out, "%s    %s %-10s %s\n", ui.Bg(e.Color), ui.Reset(), e.Name, e.Color.Hex())
			}

			ui.PrintSectionHeader(out, "Semantic")
			for _, e := range semanticColors() {
				fmt.Fprintf(out, "%s %s\n", ui.Style(e.Color).Render(fmt.Sprintf("%-10s", e.Name)), e.Color.Hex())
			}
			fmt.Fprintln(out, ui.CurrentSelection().Render("selection")+" "+ui.UISelection.Hex())

			a.log.Debug("color profile %d", ui.ColorProfile())
			return nil
		},
	}
}

func semanticColors() []ui.PaletteEntry {
	return []ui.PaletteEntry{
		{Name: "success", Color: ui.UISuccess},
		{Name: "warning", Color: ui.UIWarning},
		{Name: "error", Color: ui.UIError},
		{Name: "info", Color: ui.UIInfo},
		{Name: "header", Color: ui.UIHeader},
		{Name: "accent", Color: ui.UIAccent},
		{Name: "progress", Color: ui.UIProgress},
	}
}
