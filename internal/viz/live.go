package viz

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/runefall/internal/rain"
	"github.com/san-kum/runefall/internal/term"
)

type TickMsg time.Time

// Model runs the waterfall inside a Bubble Tea program.
type Model struct {
	wf       *rain.Waterfall
	frame    *term.Frame
	interval time.Duration
	maxTicks int
	err      error
}

// NewModel paints wf onto frame every interval. maxTicks of zero runs until
// the user quits.
func NewModel(wf *rain.Waterfall, frame *term.Frame, interval time.Duration, maxTicks int) Model {
	return Model{wf: wf, frame: frame, interval: interval, maxTicks: maxTicks}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case TickMsg:
		m.wf.Step()
		if err := m.wf.Render(m.frame); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.maxTicks > 0 && m.wf.Ticks() >= m.maxTicks {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	return m.frame.String()
}

// Err reports the render error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// Run blocks until the user quits, ctx is cancelled or rendering fails.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
