package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type progressTickMsg struct{}

// ProgressModel is a Bubble Tea program that advances a bar by step every
// delay until it reaches total. Bubble Tea owns the redraw, so the view is the
// plain rendered bar.
type ProgressModel struct {
	Label  string
	Width  int
	Filled rune
	Empty  rune

	current   int
	total     int
	step      int
	delay     time.Duration
	cancelled bool
}

// NewProgressModel creates a model counting from 0 to total. Step is at least 1.
func NewProgressModel(total, step int, delay time.Duration) ProgressModel {
	if total < 1 {
		total = 1
	}
	if step < 1 {
		step = 1
	}
	return ProgressModel{
		Label:  DefaultProgressLabel,
		Width:  DefaultProgressWidth,
		Filled: BarFilled,
		Empty:  BarEmpty,
		total:  total,
		step:   step,
		delay:  delay,
	}
}

func (m ProgressModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return progressTickMsg{} })
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	case progressTickMsg:
		m.current = clampInt(m.current+m.step, 0, m.total)
		if m.current >= m.total {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	return m.Label + RenderProgress(m.current, m.total, m.Width, m.Filled, m.Empty) + "\n"
}

// Current returns the progress reached so far.
func (m ProgressModel) Current() int { return m.current }

// Done reports whether the bar reached its total.
func (m ProgressModel) Done() bool { return m.current >= m.total }

// Cancelled reports whether the user quit early.
func (m ProgressModel) Cancelled() bool { return m.cancelled }
