package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/dotkit/termui/internal/errors"
)

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	ConfigPath string
	NoColor    bool
	Quiet      bool
	LogLevel   string
}

// bindGlobalFlags registers --config, --no-color, --quiet and --log-level.
func bindGlobalFlags(fs *pflag.FlagSet, flags *globalFlags) {
	fs.StringVar(&flags.ConfigPath, "config", "", "config file (default: .termui.yaml or ~/.config/termui/config.yaml)")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable colors and styles")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress status messages")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

// parseDuration parses a duration flag. An empty value returns fallback.
func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a valid --%s", value, name),
			"Try something like 5s, 2m, or 500ms.")
	}
	if d < 0 {
		return 0, errors.New(errors.ErrInput,
			fmt.Sprintf("--%s can't be negative", name),
			"Pass a positive duration such as 100ms")
	}
	return d, nil
}
