package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles one event to completion. Scans and kills block the loop
// while they run.
func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Debug("quit requested")
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.sel.Next()
		case key.Matches(msg, m.keys.Up):
			m.sel.Previous()
		case key.Matches(msg, m.keys.Kill):
			m.killSelected()
		case key.Matches(msg, m.keys.Refresh):
			m.logger.Debug("manual refresh")
			m.refresh()
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *MainModel) killSelected() {
	b, ok := m.Selected()
	if !ok {
		return
	}

	if err := m.terminator.Terminate(b.PID); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to kill PID %d: %v", b.PID, err)
		return
	}

	m.refresh()
	m.statusMsg = fmt.Sprintf("Killed process %s (PID: %d)", b.Name, b.PID)
}
