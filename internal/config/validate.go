package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/dotkit/termui/internal/errors"
	"github.com/dotkit/termui/internal/logger"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but termui only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade termui or lower the version field")
	}

	if err := validateProgress(cfg.Progress); err != nil {
		return err
	}

	if cfg.UI.HeaderWidth < 4 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("ui.header_width must be at least 4, got %d", cfg.UI.HeaderWidth),
			"The header needs room for its borders")
	}

	if cfg.Spinner.Duration <= 0 || cfg.Spinner.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			"spinner.duration and spinner.interval must be positive",
			"Use values like 3s and 100ms")
	}

	if cfg.TabBar.BatteryTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"tabbar.battery_timeout must be positive",
			"Use a value like 2s")
	}

	if !logger.ValidLevel(cfg.Log.Level) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log level '%s'", cfg.Log.Level),
			"Use one of: debug, info, warn, error")
	}
	if !logger.ValidFormat(cfg.Log.Format) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log format '%s'", cfg.Log.Format),
			"Use console or structured")
	}

	return nil
}

func validateProgress(p ProgressConfig) error {
	if p.Width <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("progress.width must be positive, got %d", p.Width),
			"Try 50")
	}
	for field, value := range map[string]string{"progress.filled": p.Filled, "progress.empty": p.Empty} {
		if utf8.RuneCountInString(value) != 1 {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("%s must be a single character, got %q", field, value),
				"Use one glyph such as █ or ░")
		}
	}
	return nil
}
