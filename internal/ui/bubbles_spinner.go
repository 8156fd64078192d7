package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// SpinnerFrames is the braille dot animation for Bubble Tea programs, matching
// the inline spinners.
var SpinnerFrames = spinner.Spinner{
	Frames: spinnerFrames,
	FPS:    time.Second / 10,
}

// SpinnerComponentState represents the state of a spinner in a Bubble Tea model.
type SpinnerComponentState int

const (
	SpinnerComponentPending SpinnerComponentState = iota
	SpinnerComponentInProgress
	SpinnerComponentSuccess
	SpinnerComponentFailed
	SpinnerComponentSkipped
)

// SpinnerComponent is a Bubble Tea model for embedding spinners in TUI programs.
type SpinnerComponent struct {
	spinner   spinner.Model
	Label     string
	State     SpinnerComponentState
	StartTime time.Time
}

// NewSpinnerComponent creates a spinner component with the given label.
func NewSpinnerComponent(label string) SpinnerComponent {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = Style(UIAccent)

	return SpinnerComponent{
		spinner: sp,
		Label:   label,
		State:   SpinnerComponentPending,
	}
}

// Init returns the initial tick command.
func (s SpinnerComponent) Init() tea.Cmd {
	return s.spinner.Tick
}

// Update advances the animation while in progress.
func (s SpinnerComponent) Update(msg tea.Msg) (SpinnerComponent, tea.Cmd) {
	if s.State != SpinnerComponentInProgress {
		return s, nil
	}

	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the spinner in its current state.
func (s SpinnerComponent) View() string {
	switch s.State {
	case SpinnerComponentInProgress:
		return s.spinner.View() + " " + s.Label
	case SpinnerComponentSuccess:
		return s.viewFinal(SymbolSuccess, UISuccess)
	case SpinnerComponentFailed:
		return s.viewFinal(SymbolFail, UIError)
	case SpinnerComponentSkipped:
		return s.viewFinal(SymbolSkipped, UIWarning)
	default:
		return s.viewFinal(SymbolPending, UIInfo)
	}
}

func (s SpinnerComponent) viewFinal(symbol string, color RGB) string {
	return Style(color).Render(symbol) + " " + s.Label
}

// Start transitions the spinner to in-progress state.
func (s *SpinnerComponent) Start() tea.Cmd {
	s.State = SpinnerComponentInProgress
	s.StartTime = time.Now()
	return s.spinner.Tick
}

// Success transitions the spinner to success state.
func (s *SpinnerComponent) Success() { s.State = SpinnerComponentSuccess }

// Fail transitions the spinner to failed state.
func (s *SpinnerComponent) Fail() { s.State = SpinnerComponentFailed }

// Skip transitions the spinner to skipped state.
func (s *SpinnerComponent) Skip() { s.State = SpinnerComponentSkipped }

// Elapsed returns the duration since the spinner started.
func (s SpinnerComponent) Elapsed() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return time.Since(s.StartTime)
}

type spinnerDoneMsg struct{}

// TimedSpinnerModel is a standalone program that spins for a fixed duration
// and quits. ctrl+c, esc or q end it early as a failure.
type TimedSpinnerModel struct {
	component SpinnerComponent
	duration  time.Duration
	cancelled bool
}

// NewTimedSpinnerModel creates a timed spinner. Non-positive intervals keep the default frame rate.
func NewTimedSpinnerModel(message string, duration, interval time.Duration) TimedSpinnerModel {
	c := NewSpinnerComponent(message)
	if interval > 0 {
		c.spinner.Spinner.FPS = interval
	}
	c.State = SpinnerComponentInProgress
	c.StartTime = time.Now()
	return TimedSpinnerModel{component: c, duration: duration}
}

// Init starts the animation and the deadline.
func (m TimedSpinnerModel) Init() tea.Cmd {
	return tea.Batch(
		m.component.Init(),
		tea.Tick(m.duration, func(time.Time) tea.Msg { return spinnerDoneMsg{} }),
	)
}

// Update implements tea.Model.
func (m TimedSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.component.Fail()
			return m, tea.Quit
		}
		return m, nil
	case spinnerDoneMsg:
		m.component.Success()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.component, cmd = m.component.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m TimedSpinnerModel) View() string {
	return m.component.View() + "\n"
}

// Cancelled reports whether the user ended the spinner early.
func (m TimedSpinnerModel) Cancelled() bool { return m.cancelled }

// State returns the spinner state.
func (m TimedSpinnerModel) State() SpinnerComponentState { return m.component.State }
