package tabbar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dotkit/termui/internal/config"
	"github.com/dotkit/termui/internal/exec"
	"github.com/dotkit/termui/internal/logger"
)

func TestBatteryProviderStatus(t *testing.T) {
	tests := []struct {
		name    string
		command string
		timeout time.Duration
		want    string
		logged  bool
	}{
		{"trims output", "printf '  75%%  \\n'", time.Second, "75%", false},
		{"non-zero exit", "echo 50%; exit 3", time.Second, BatteryUnavailable, true},
		{"timeout", "sleep 5", 50 * time.Millisecond, BatteryUnavailable, true},
		{"empty command", "   ", time.Second, BatteryUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.NewBufferLogger()
			b := &BatteryProvider{
				Shell:   exec.Shell{Path: "/bin/sh"},
				Command: tt.command,
				Timeout: tt.timeout,
				Log:     log,
			}

			assert.Equal(t, tt.want, b.Status(context.Background()))
			assert.Equal(t, tt.logged, log.HasLevel(logger.LevelDebug))
		})
	}
}

func TestBatteryProviderMissingShell(t *testing.T) {
	b := &BatteryProvider{
		Shell:   exec.Shell{Path: "/nonexistent/shell"},
		Command: "battery",
		Timeout: time.Second,
	}

	assert.Equal(t, BatteryUnavailable, b.Status(context.Background()))
}

func TestNewBatteryProvider(t *testing.T) {
	cfg := config.DefaultConfig().TabBar

	b := NewBatteryProvider(cfg, nil)

	assert.Equal(t, exec.Shell{Path: "/bin/zsh", Login: true}, b.Shell)
	assert.Equal(t, "battery --kitty", b.Command)
	assert.Equal(t, 2*time.Second, b.Timeout)
	assert.NotNil(t, b.Log)
}

func TestStaticStatus(t *testing.T) {
	assert.Equal(t, "99%", StaticStatus("99%").Status(context.Background()))
}
