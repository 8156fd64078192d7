package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/dotkit/termui/internal/errors"
)

// DefaultSpinnerInterval is the frame period of a Spinner.
const DefaultSpinnerInterval = 100 * time.Millisecond

// Braille dot frames shared by the inline and Bubble Tea spinners.
var spinnerFrames = spinner.MiniDot.Frames

// RunSpinner animates message for duration, one frame per interval, then
// prints a final check mark line. It blocks. When ctx is cancelled first the
// final line shows a cross and ctx's error is returned. The cursor is hidden
// while spinning and shown again on every path.
func RunSpinner(ctx context.Context, w io.Writer, message string, duration, interval time.Duration) error {
	if interval <= 0 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("spinner interval must be positive, got %s", interval),
			"Pass an interval such as 100ms")
	}

	HideCursor(w)
	defer ShowCursor(w)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	steps := int(duration / interval)
	for i := 0; i < steps; i++ {
		emit(w, "\r"+Fg(UIAccent)+spinnerFrames[i%len(spinnerFrames)]+Reset()+" "+message)
		select {
		case <-ctx.Done():
			emit(w, "\r"+Fg(UIError)+SymbolFail+Reset()+" "+message+"\n")
			return ctx.Err()
		case <-ticker.C:
		}
	}

	// duration < interval skips the loop entirely.
	if err := ctx.Err(); err != nil {
		emit(w, "\r"+Fg(UIError)+SymbolFail+Reset()+" "+message+"\n")
		return err
	}
	emit(w, "\r"+Fg(UISuccess)+SymbolSuccess+Reset()+" "+message+"\n")
	return nil
}

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
	SpinnerSkipped
)

// Spinner displays an animated status indicator for work of unknown length.
// Unlike RunSpinner it animates in the background until told how it ended.
type Spinner struct {
	mu        sync.Mutex
	w         io.Writer
	label     string
	state     SpinnerState
	frame     int
	interval  time.Duration
	startTime time.Time
	stopChan  chan struct{}
	doneChan  chan struct{}
	running   bool
}

// NewSpinner creates a spinner with the given label writing to w.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{
		w:        w,
		label:    label,
		state:    SpinnerPending,
		interval: DefaultSpinnerInterval,
	}
}

// SetInterval changes the frame period. It has no effect once started.
func (s *Spinner) SetInterval(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 && !s.running {
		s.interval = d
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()

	go s.animate()
}

// Stop halts the animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and marks it as successful.
func (s *Spinner) Success() { s.finish(SpinnerSuccess) }

// Fail stops the spinner and marks it as failed.
func (s *Spinner) Fail() { s.finish(SpinnerFailed) }

// Skip stops the spinner and marks it as skipped.
func (s *Spinner) Skip() { s.finish(SpinnerSkipped) }

func (s *Spinner) finish(state SpinnerState) {
	s.Stop()
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	s.renderFinal()
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Label returns the spinner's label.
func (s *Spinner) Label() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.label
}

// SetLabel updates the spinner's label. The next frame shows it.
func (s *Spinner) SetLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
}

func (s *Spinner) animate() {
	s.mu.Lock()
	ticker := time.NewTicker(s.interval)
	s.mu.Unlock()
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	emit(s.w, "\r"+ClearLineSeq+Fg(UIAccent)+spinnerFrames[s.frame]+Reset()+" "+s.label+"...")
}

func (s *Spinner) renderFinal() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var symbol string
	var color RGB
	switch s.state {
	case SpinnerSuccess:
		symbol, color = SymbolSuccess, UISuccess
	case SpinnerFailed:
		symbol, color = SymbolFail, UIError
	case SpinnerSkipped:
		symbol, color = SymbolSkipped, UIWarning
	default:
		symbol, color = SymbolPending, UIInfo
	}

	emit(s.w, fmt.Sprintf("\r%s%s %s %s\n",
		ClearLineSeq,
		Style(color).Render(symbol),
		s.label,
		Style(UIInfo).Render(FormatDuration(time.Since(s.startTime))),
	))
}

// FormatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
