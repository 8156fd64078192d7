package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/config"
	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/logger"
	"github.com/dotkit/termui/internal/ui"
)

// app carries resolved settings into command handlers.
type app struct {
	flags   globalFlags
	cfg     *config.Config
	cfgPath string
	log     logger.Logger
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultConfig(), log: logger.Noop()}

	root := &cobra.Command{
		Use:   "termui",
		Short: "Terminal UI building blocks: progress bars, spinners, headers and a tab bar",
		Long: `termui draws the pieces of a terminal interface: an inline progress bar
that only redraws when something visible changed, spinners, header boxes,
status messages, confirmation prompts and a kitty-style tab bar.

Settings are read from .termui.yaml (current directory, then parents) or
~/.config/termui/config.yaml, and can be overridden with TERMUI_* variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	bindGlobalFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		newDemoCmd(a),
		newProgressCmd(a),
		newSpinnerCmd(a),
		newConfirmCmd(a),
		newPauseCmd(),
		newHeaderCmd(a),
		newBoxCmd(a),
		newColorsCmd(a),
		newStatusCmd(a),
		newTabBarCmd(a),
		newBatteryCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads config, builds the logger and picks the color profile.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.LoadOrDefault(a.flags.ConfigPath)
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	level := cfg.Log.Level
	if a.flags.LogLevel != "" {
		level = a.flags.LogLevel
	}
	log, err := logger.New(level, cfg.Log.Format)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a log level", level),
			"Use one of: debug, info, warn, error")
	}
	a.log = log
	logger.SetDefault(log)

	if path != "" {
		a.log.Debug("using config %s", path)
	} else {
		a.log.Debug("no config file found, using defaults")
	}

	if a.flags.NoColor || cfg.UI.NoColor {
		ui.DisableColors()
	} else {
		ui.SetColorProfile(ui.DetectColorProfile(cmd.OutOrStdout()))
	}

	if a.flags.Quiet {
		a.cfg.UI.Silent = true
	}
	return nil
}

// printer returns a message printer honoring --quiet and ui.silent.
func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	p := ui.NewPrinter(cmd.OutOrStdout())
	p.Silent = a.cfg.UI.Silent
	return p
}

// exitCodeError ends the process with a code and no message.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:]))
}

// run executes root with args and returns the process exit code.
func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitCodeError
	if stderrors.As(err, &exitErr) {
		return exitErr.code
	}
	// Interrupted: the component already marked its line.
	if stderrors.Is(err, context.Canceled) {
		return 130
	}

	errOut := root.ErrOrStderr()
	if isUnknownCommandError(err) {
		fmt.Fprintln(errOut, errors.New(errors.ErrInput, err.Error(),
			"Run 'termui --help' to see the available commands").Error())
		return 1
	}

	var tuiErr *errors.Error
	if stderrors.As(err, &tuiErr) {
		logger.Default().Debug("command failed: %s", errors.CodeOf(err))
		fmt.Fprint(errOut, tuiErr.Error())
	} else {
		fmt.Fprintf(errOut, "%s %s\n", ui.SymbolFail, err)
	}
	return 1
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
