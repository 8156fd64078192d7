package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/tabbar"
	"github.com/dotkit/termui/internal/ui"
	"github.com/dotkit/termui/internal/util"
)

type tabBarOptions struct {
	Tabs     string
	Active   int
	Columns  int
	MaxTitle int
	Battery  string
}

func newTabBarCmd(a *app) *cobra.Command {
	var opts tabBarOptions
	cmd := &cobra.Command{
		Use:   "tabbar",
		Short: "Render a kitty-style tab bar line",
		Long: `Render one tab bar line: icon, rounded tabs, clock and battery.

--battery replaces the battery command with a fixed readout.

Examples:
  termui tabbar --tabs zsh,vim,logs --active 2
  termui tabbar --tabs build --columns 60 --battery 80%`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTabBar(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.Tabs, "tabs", "zsh", "comma-separated tab titles")
	f.IntVar(&opts.Active, "active", 1, "1-based index of the active tab")
	f.IntVar(&opts.Columns, "columns", 0, "screen width (default: terminal width or 80)")
	f.IntVar(&opts.MaxTitle, "max-title", 0, "title length limit (default: shared evenly)")
	f.StringVar(&opts.Battery, "battery", "", "fixed battery readout instead of running the command")
	return cmd
}

func (a *app) runTabBar(cmd *cobra.Command, opts tabBarOptions) error {
	titles := util.SplitList(opts.Tabs)
	if len(titles) == 0 {
		return errors.New(errors.ErrInput, "No tabs given", "Pass titles with --tabs zsh,vim")
	}
	if opts.Active < 1 || opts.Active > len(titles) {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("--active %d is out of range", opts.Active),
			fmt.Sprintf("Pick a tab between 1 and %d", len(titles)))
	}
	a.log.Debug("drawing %s: %s", util.Pluralize(len(titles), "tab", "tabs"), util.JoinOrNone(titles))

	tabs := make([]tabbar.Tab, len(titles))
	for i, title := range titles {
		tabs[i] = tabbar.Tab{Title: title, IsActive: i+1 == opts.Active}
	}

	columns := opts.Columns
	if columns <= 0 {
		columns = ui.TerminalWidth(os.Stdout, 80)
	}

	r := &tabbar.Renderer{
		Icon:        a.cfg.TabBar.Icon,
		ClockFormat: a.cfg.TabBar.ClockFormat,
	}
	if opts.Battery != "" {
		r.Battery = tabbar.StaticStatus(opts.Battery)
	} else {
		r.Battery = tabbar.NewBatteryProvider(a.cfg.TabBar, a.log)
	}

	dd := tabbar.DefaultDrawData()
	if a.cfg.TabBar.TitleTemplate != "" {
		dd.TitleTemplate = a.cfg.TabBar.TitleTemplate
	}

	screen := tabbar.NewCellScreen(columns)
	r.DrawBar(cmd.Context(), dd, screen, tabs, opts.MaxTitle)

	line := screen.Text()
	if ui.ColorsEnabled() {
		line = screen.String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func newBatteryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "battery",
		Short: "Print the battery readout used by the tab bar",
		Long: `Run tabbar.battery_command through tabbar.battery_shell and print its
output. Prints N/A when the command fails or times out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := tabbar.NewBatteryProvider(a.cfg.TabBar, a.log).Status(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), status)
			return nil
		},
	}
}
