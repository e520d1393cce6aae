package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap declares the dashboard's key bindings.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// HandleKeyMsg processes one key press and returns whether it was handled
// plus any resulting command. The transition table is tiny: the quit keys
// set quitting (idempotently) and stop the program; every other key is a
// no-op. Bubble Tea only delivers press events, so key releases never
// reach this path.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.quitting = true
		return true, tea.Quit
	}
	return false, nil
}
