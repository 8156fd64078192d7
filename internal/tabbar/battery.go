package tabbar

import (
	"context"
	"strings"
	"time"

	"github.com/dotkit/termui/internal/config"
	"github.com/dotkit/termui/internal/exec"
	"github.com/dotkit/termui/internal/logger"
)

// BatteryUnavailable is shown when the battery command fails.
const BatteryUnavailable = "N/A"

const defaultBatteryTimeout = 2 * time.Second

// BatteryProvider reads the battery readout from an external command run
// through a (login) shell.
type BatteryProvider struct {
	Shell   exec.Shell
	Command string
	Timeout time.Duration
	Log     logger.Logger
}

// NewBatteryProvider builds a provider from tab bar settings.
func NewBatteryProvider(cfg config.TabBarConfig, log logger.Logger) *BatteryProvider {
	if log == nil {
		log = logger.Noop()
	}
	return &BatteryProvider{
		Shell:   exec.Shell{Path: cfg.BatteryShell, Login: cfg.BatteryLogin},
		Command: cfg.BatteryCommand,
		Timeout: cfg.BatteryTimeout,
		Log:     log,
	}
}

// Status runs the command and returns its trimmed output, or
// BatteryUnavailable when it fails, exits non-zero or times out.
func (b *BatteryProvider) Status(ctx context.Context) string {
	log := b.Log
	if log == nil {
		log = logger.Noop()
	}
	if strings.TrimSpace(b.Command) == "" {
		return BatteryUnavailable
	}

	timeout := b.Timeout
	if timeout <= 0 {
		timeout = defaultBatteryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := exec.Capture(ctx, b.Shell, b.Command)
	if err != nil {
		log.Debug("battery command %q failed: %v", b.Command, err)
		return BatteryUnavailable
	}
	if res.ExitCode != 0 {
		log.Debug("battery command %q exited %d: %s", b.Command, res.ExitCode, strings.TrimSpace(string(res.Stderr)))
		return BatteryUnavailable
	}
	return strings.TrimSpace(string(res.Stdout))
}

// StaticStatus is a fixed readout, for previews and tests.
type StaticStatus string

// Status returns s.
func (s StaticStatus) Status(context.Context) string { return string(s) }
