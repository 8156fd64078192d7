package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dotkit/termui/internal/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".termui.yaml"
	// GlobalConfigDir is the directory for global config, relative to home.
	GlobalConfigDir = ".config/termui"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. TERMUI_PROGRESS_WIDTH.
	EnvPrefix = "TERMUI"
)

// Load reads config from the specified path, with defaults and env overrides merged in.
// An empty path skips the file and yields defaults plus env overrides.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(ExpandTilde(path))
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'termui config init' to create one, or point --config at an existing file")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .termui.yaml in current directory
// 3. .termui.yaml in parent directories (stops at git root or home)
// 4. ~/.config/termui/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	if local := filepath.Join(cwd, ConfigFileName); fileExists(local) {
		return local, nil
	}

	home, _ := os.UserHomeDir()
	dir := cwd
	for !isGitRoot(dir) {
		parent := filepath.Dir(dir)
		if parent == dir || (home != "" && parent == home) {
			break
		}
		dir = parent

		if candidate := filepath.Join(dir, ConfigFileName); fileExists(candidate) {
			return candidate, nil
		}
	}

	if home != "" {
		if global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile); fileExists(global) {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config, or returns defaults (plus env overrides) if none exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

// setDefaults registers every key so env overrides apply even without a file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("progress.width", d.Progress.Width)
	v.SetDefault("progress.filled", d.Progress.Filled)
	v.SetDefault("progress.empty", d.Progress.Empty)
	v.SetDefault("progress.label", d.Progress.Label)
	v.SetDefault("ui.silent", d.UI.Silent)
	v.SetDefault("ui.no_color", d.UI.NoColor)
	v.SetDefault("ui.header_width", d.UI.HeaderWidth)
	v.SetDefault("spinner.duration", d.Spinner.Duration.String())
	v.SetDefault("spinner.interval", d.Spinner.Interval.String())
	v.SetDefault("tabbar.icon", d.TabBar.Icon)
	v.SetDefault("tabbar.clock_format", d.TabBar.ClockFormat)
	v.SetDefault("tabbar.title_template", d.TabBar.TitleTemplate)
	v.SetDefault("tabbar.battery_shell", d.TabBar.BatteryShell)
	v.SetDefault("tabbar.battery_login", d.TabBar.BatteryLogin)
	v.SetDefault("tabbar.battery_command", d.TabBar.BatteryCommand)
	v.SetDefault("tabbar.battery_timeout", d.TabBar.BatteryTimeout.String())
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		return false
	}
	return info.IsDir()
}
