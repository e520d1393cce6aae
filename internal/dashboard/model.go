// Package dashboard implements the full-screen panel demo: a Bubble Tea
// model that owns the quit flag and a render pass that partitions the
// terminal into titled panels each frame.
package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/blockdash/internal/logger"
	"github.com/rileyhilliard/blockdash/internal/sample"
)

// Model is the Bubble Tea model for the dashboard. The only mutable
// application state is the quitting flag; everything else is the canvas
// size the terminal reported last.
type Model struct {
	width    int
	height   int
	samples  sample.Source
	log      logger.Logger
	quitting bool
}

// New creates a dashboard model. A nil source or logger falls back to the
// random source and the no-op logger.
func New(src sample.Source, log logger.Logger) Model {
	if src == nil {
		src = sample.New()
	}
	if log == nil {
		log = logger.Noop()
	}
	return Model{samples: src, log: log}
}

// Init returns the initial command. The dashboard redraws on input events
// only, so there is nothing to schedule.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state. Key presses feed
// the quit transition table; resize messages record the new canvas size
// (the next render picks it up - there is no reflow logic); mouse events
// are accepted and discarded.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.log.Debug("canvas resized to %dx%d", m.width, m.height)

	case tea.MouseMsg:
		// Deliberately ignored.
	}

	return m, nil
}

// View renders one frame over the current canvas size.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// Quitting reports whether a quit transition has fired.
func (m Model) Quitting() bool {
	return m.quitting
}

// Size returns the canvas dimensions from the last resize notification.
func (m Model) Size() (width, height int) {
	return m.width, m.height
}
