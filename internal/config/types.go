package config

import (
	"time"
	"unicode/utf8"
)

// CurrentConfigVersion is the schema version for the config file.
const CurrentConfigVersion = 1

// Config represents the complete .termui.yaml configuration file.
type Config struct {
	Version  int            `yaml:"version" mapstructure:"version"`
	Progress ProgressConfig `yaml:"progress" mapstructure:"progress"`
	UI       UIConfig       `yaml:"ui" mapstructure:"ui"`
	Spinner  SpinnerConfig  `yaml:"spinner" mapstructure:"spinner"`
	TabBar   TabBarConfig   `yaml:"tabbar" mapstructure:"tabbar"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// ProgressConfig controls the inline progress bar.
type ProgressConfig struct {
	// Width is the number of bar cells between the brackets.
	Width int `yaml:"width" mapstructure:"width"`

	// Filled and Empty are single characters for done and remaining cells.
	Filled string `yaml:"filled" mapstructure:"filled"`
	Empty  string `yaml:"empty" mapstructure:"empty"`

	// Label is written before the bar on every redraw.
	Label string `yaml:"label" mapstructure:"label"`
}

// FilledRune returns the first rune of Filled.
func (p ProgressConfig) FilledRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Filled)
	return r
}

// EmptyRune returns the first rune of Empty.
func (p ProgressConfig) EmptyRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Empty)
	return r
}

// UIConfig holds message and layout settings.
type UIConfig struct {
	// Silent suppresses success/warning/error/info messages.
	Silent bool `yaml:"silent" mapstructure:"silent"`

	// NoColor disables every color and style sequence.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`

	// HeaderWidth is the default box width for headers.
	HeaderWidth int `yaml:"header_width" mapstructure:"header_width"`
}

// SpinnerConfig controls the blocking spinner.
type SpinnerConfig struct {
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// TabBarConfig controls the tab bar renderer and its battery readout.
type TabBarConfig struct {
	Icon          string `yaml:"icon" mapstructure:"icon"`
	ClockFormat   string `yaml:"clock_format" mapstructure:"clock_format"`
	TitleTemplate string `yaml:"title_template" mapstructure:"title_template"`

	// BatteryShell runs BatteryCommand; BatteryLogin loads the user's profile first.
	BatteryShell   string        `yaml:"battery_shell" mapstructure:"battery_shell"`
	BatteryLogin   bool          `yaml:"battery_login" mapstructure:"battery_login"`
	BatteryCommand string        `yaml:"battery_command" mapstructure:"battery_command"`
	BatteryTimeout time.Duration `yaml:"battery_timeout" mapstructure:"battery_timeout"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Progress: ProgressConfig{
			Width:  50,
			Filled: "█",
			Empty:  "░",
			Label:  "Progress: ",
		},
		UI: UIConfig{
			HeaderWidth: 78,
		},
		Spinner: SpinnerConfig{
			Duration: 3 * time.Second,
			Interval: 100 * time.Millisecond,
		},
		TabBar: TabBarConfig{
			Icon:           "󰘧 ",
			ClockFormat:    "15:04",
			TitleTemplate:  "{index} {title}",
			BatteryShell:   "/bin/zsh",
			BatteryLogin:   true,
			BatteryCommand: "battery --kitty",
			BatteryTimeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
