package config

import (
	"os"
	"path/filepath"

	"github.com/dotkit/termui/internal/errors"
	"gopkg.in/yaml.v3"
)

// Write serialises cfg as YAML to path, creating parent directories.
// An existing file is only replaced when overwrite is true.
func Write(path string, cfg *Config, overwrite bool) error {
	if !overwrite && fileExists(path) {
		return errors.New(errors.ErrConfig,
			"Config file already exists: "+path,
			"Use --force to overwrite")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode config",
			"This shouldn't happen - please report this bug!")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory",
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write config file",
			"Check file permissions")
	}
	return nil
}

// MarshalYAML writes durations as strings ("3s") instead of nanoseconds.
func (s SpinnerConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Duration string `yaml:"duration"`
		Interval string `yaml:"interval"`
	}{s.Duration.String(), s.Interval.String()}, nil
}

// MarshalYAML writes the battery timeout as a duration string.
func (t TabBarConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Icon           string `yaml:"icon"`
		ClockFormat    string `yaml:"clock_format"`
		TitleTemplate  string `yaml:"title_template"`
		BatteryShell   string `yaml:"battery_shell"`
		BatteryLogin   bool   `yaml:"battery_login"`
		BatteryCommand string `yaml:"battery_command"`
		BatteryTimeout string `yaml:"battery_timeout"`
	}{
		Icon:           t.Icon,
		ClockFormat:    t.ClockFormat,
		TitleTemplate:  t.TitleTemplate,
		BatteryShell:   t.BatteryShell,
		BatteryLogin:   t.BatteryLogin,
		BatteryCommand: t.BatteryCommand,
		BatteryTimeout: t.BatteryTimeout.String(),
	}, nil
}
