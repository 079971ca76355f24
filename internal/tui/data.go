package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/muesli/reflow/truncate"
)

const (
	markerWidth = 2
	portWidth   = 7 // ":" plus at least six digits
	protoWidth  = 5
	pidWidth    = 6
	minName     = 8

	// one cell of padding on each side of five columns, plus the box border
	tableChrome = 5*2 + 2
	// title box, list box border and title, status box
	verticalChrome = 3 + 2 + 1 + 3
)

// refresh replaces the list with a fresh scan and keeps the selection valid.
func (m *MainModel) refresh() {
	m.bindings = m.scanner.Scan()
	m.sel.Reconcile(len(m.bindings))
	m.statusMsg = fmt.Sprintf("Found %d processes", len(m.bindings))
}

func nameWidth(width int) int {
	w := width - tableChrome - markerWidth - portWidth - protoWidth - pidWidth
	if w < minName {
		w = minName
	}
	return w
}

func columns(width int) []table.Column {
	return []table.Column{
		{Title: "", Width: markerWidth},
		{Title: "PORT", Width: portWidth},
		{Title: "PROTO", Width: protoWidth},
		{Title: "PID", Width: pidWidth},
		{Title: "NAME", Width: nameWidth(width)},
	}
}

func (m *MainModel) resize(width, height int) {
	m.width = width
	m.height = height

	listHeight := height - verticalChrome
	if listHeight < 1 {
		listHeight = 1
	}
	m.table.SetColumns(columns(width))
	m.table.SetWidth(width - 2)
	m.table.SetHeight(listHeight)
	m.help.Width = width - 2
}

// rows renders the bindings for the table; the selected row carries ">>".
func (m MainModel) rows() []table.Row {
	selected, ok := m.sel.Selected()
	width := uint(nameWidth(m.width))

	rows := make([]table.Row, 0, len(m.bindings))
	for i, b := range m.bindings {
		marker := ""
		if ok && i == selected {
			marker = ">>"
		}
		rows = append(rows, table.Row{
			marker,
			fmt.Sprintf(":%-6d", b.Port),
			fmt.Sprintf("%-4s", b.Protocol),
			fmt.Sprintf("%6d", b.PID),
			truncate.StringWithTail(sanitizeName(b.Name), width, "…"),
		})
	}
	return rows
}

// visibleRows returns the window of rows that fits in height with the
// selected row inside it, and the selection's position within that window.
func (m MainModel) visibleRows(height int) ([]table.Row, int) {
	rows := m.rows()
	selected, ok := m.sel.Selected()
	if !ok || height <= 0 {
		return rows, 0
	}

	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], selected - start
}
