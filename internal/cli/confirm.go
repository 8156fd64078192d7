package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/ui"
)

func newConfirmCmd(a *app) *cobra.Command {
	var defaultAnswer string
	cmd := &cobra.Command{
		Use:   "confirm MESSAGE",
		Short: "Ask a yes/no question; exit 0 on yes, 1 on no",
		Long: `Ask MESSAGE as a yes/no question. An empty answer takes --default.

Meant for shell scripts:
  if termui confirm "Deploy now?"; then ./deploy.sh; fi
  termui confirm "Keep going?" --default y || exit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfirm(cmd, args[0], defaultAnswer)
		},
	}
	cmd.Flags().StringVar(&defaultAnswer, "default", "n", "answer used on empty input: y or n")
	return cmd
}

func (a *app) runConfirm(cmd *cobra.Command, message, defaultAnswer string) error {
	defaultYes, err := parseYesNo(defaultAnswer)
	if err != nil {
		return err
	}

	var yes bool
	if in := cmd.InOrStdin(); in == os.Stdin {
		yes, err = ui.Confirm(message, defaultYes)
	} else {
		yes, err = ui.AskConfirmation(in, cmd.OutOrStdout(), message, defaultYes)
	}
	if err != nil {
		return err
	}

	a.log.Debug("confirm %q answered %t", message, yes)
	if !yes {
		return &exitCodeError{code: 1}
	}
	return nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "", "n", "no":
		return false, nil
	default:
		return false, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' isn't a valid --default", s),
			"Use y or n")
	}
}

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Wait until Enter is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.WaitForKeypress(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
