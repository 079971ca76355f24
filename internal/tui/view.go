package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

func (m MainModel) View() string {
	if m.quitting {
		return ""
	}

	innerWidth := m.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	boxed := baseStyle.Width(innerWidth)

	title := titleStyle.Render(windowTitle)
	if m.version != "" {
		gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(m.version) - 1
		if gap > 0 {
			title += strings.Repeat(" ", gap) + versionStyle.Render(m.version)
		}
	}

	t := m.table
	rows, cursor := m.visibleRows(t.Height())
	t.SetRows(rows)
	t.SetCursor(cursor)

	list := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(listTitle),
		t.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		boxed.Render(title),
		boxed.Render(list),
		boxed.Render(statusStyle.Render(truncate.StringWithTail(m.statusLine(), uint(innerWidth), "…"))),
	)
}

// statusLine is the last status message followed by the key legend. View cuts
// it to one line so the layout keeps its height.
func (m MainModel) statusLine() string {
	legend := m.help.View(m.keys)
	if m.statusMsg == "" {
		return legend
	}
	return m.statusMsg + " | " + legend
}
