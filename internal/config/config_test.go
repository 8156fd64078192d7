package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dotkit/termui/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, 50, cfg.Progress.Width)
	assert.Equal(t, '█', cfg.Progress.FilledRune())
	assert.Equal(t, '░', cfg.Progress.EmptyRune())
	assert.Equal(t, "Progress: ", cfg.Progress.Label)
	assert.False(t, cfg.UI.Silent)
	assert.Equal(t, 78, cfg.UI.HeaderWidth)
	assert.Equal(t, 3*time.Second, cfg.Spinner.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Spinner.Interval)
	assert.Equal(t, "15:04", cfg.TabBar.ClockFormat)
	assert.Equal(t, "battery --kitty", cfg.TabBar.BatteryCommand)
	assert.True(t, cfg.TabBar.BatteryLogin)
	assert.Equal(t, 2*time.Second, cfg.TabBar.BatteryTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)

	content := `
version: 1
progress:
  width: 20
  filled: "#"
  empty: "-"
ui:
  silent: true
spinner:
  duration: 5s
tabbar:
  battery_command: "pmset -g batt"
  battery_timeout: 500ms
log:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Progress.Width)
	assert.Equal(t, '#', cfg.Progress.FilledRune())
	assert.Equal(t, '-', cfg.Progress.EmptyRune())
	assert.Equal(t, "Progress: ", cfg.Progress.Label, "unset keys keep defaults")
	assert.True(t, cfg.UI.Silent)
	assert.Equal(t, 5*time.Second, cfg.Spinner.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Spinner.Interval)
	assert.Equal(t, "pmset -g batt", cfg.TabBar.BatteryCommand)
	assert.Equal(t, 500*time.Millisecond, cfg.TabBar.BatteryTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TERMUI_PROGRESS_WIDTH", "30")
	t.Setenv("TERMUI_UI_NO_COLOR", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Progress.Width)
	assert.True(t, cfg.UI.NoColor)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("progress:\n  width: 0\n"), 0o644))

	_, err := Load(configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "progress.width")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"future version", func(c *Config) { c.Version = 99 }, "from the future"},
		{"zero width", func(c *Config) { c.Progress.Width = 0 }, "progress.width"},
		{"multi-rune filled", func(c *Config) { c.Progress.Filled = "##" }, "progress.filled"},
		{"empty empty char", func(c *Config) { c.Progress.Empty = "" }, "progress.empty"},
		{"tiny header", func(c *Config) { c.UI.HeaderWidth = 2 }, "header_width"},
		{"zero spinner interval", func(c *Config) { c.Spinner.Interval = 0 }, "spinner"},
		{"zero battery timeout", func(c *Config) { c.TabBar.BatteryTimeout = 0 }, "battery_timeout"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestFind_CurrentAndParentDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	rootConfig := filepath.Join(root, ConfigFileName)
	require.NoError(t, os.WriteFile(rootConfig, []byte("version: 1\n"), 0o644))

	t.Chdir(child)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, rootConfig), evalSymlinks(t, found))

	local := filepath.Join(child, ConfigFileName)
	require.NoError(t, os.WriteFile(local, []byte("version: 1\n"), 0o644))

	found, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, local), evalSymlinks(t, found))
}

func TestFind_Global(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0o755))
	require.NoError(t, os.WriteFile(global, []byte("version: 1\n"), 0o644))

	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0o755))
	t.Chdir(work)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, evalSymlinks(t, global), evalSymlinks(t, found))
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	cfg := DefaultConfig()
	cfg.Progress.Width = 42
	cfg.Spinner.Duration = 1500 * time.Millisecond
	require.NoError(t, Write(path, cfg, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "duration: 1.5s")
	assert.Contains(t, string(data), "battery_timeout: 2s")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, Write(path, DefaultConfig(), false))

	err := Write(path, DefaultConfig(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	assert.NoError(t, Write(path, DefaultConfig(), true))
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "x.yaml"), ExpandTilde("~/x.yaml"))
	assert.Equal(t, "/abs/x.yaml", ExpandTilde("/abs/x.yaml"))
	assert.Equal(t, "~user/x", ExpandTilde("~user/x"))
}

func evalSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
