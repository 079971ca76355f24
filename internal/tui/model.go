package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/rip-tui/rip/internal/selection"
	"github.com/rip-tui/rip/pkg/model"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#585858")) // Dark Gray

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00d7d7")). // Cyan
			Padding(0, 1)

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")) // Dimmed Gray

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5f5fd7")). // Purple/Blue
				Bold(true).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("#585858")). // Dark Gray
				Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffdf87")) // Amber
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	listTitle   = "Processes (PORT | PROTO | PID | NAME)"
	windowTitle = "rip - Kill processes on ports"
)

// Scanner lists the current port bindings. It never fails; an empty result
// covers both "nothing listening" and "could not ask".
type Scanner interface {
	Scan() []model.PortBinding
}

type Terminator interface {
	Terminate(pid int) error
}

type Options struct {
	Scanner    Scanner
	Terminator Terminator
	Logger     *log.Logger
	Version    string
}

type MainModel struct {
	scanner    Scanner
	terminator Terminator
	logger     *log.Logger

	bindings  []model.PortBinding
	sel       selection.State
	statusMsg string // last scan or kill outcome, overwritten each time

	table    table.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
	version  string
	quitting bool
}

// New builds the model and runs the initial scan.
func New(opts Options) MainModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := table.New(
		table.WithColumns(columns(defaultWidth)),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#ffffff")). // White
		Background(lipgloss.Color("#585858")). // Dark Gray
		Bold(true)
	t.SetStyles(s)

	h := help.New()
	h.Styles.ShortKey = statusStyle
	h.Styles.ShortDesc = statusStyle
	h.Styles.ShortSeparator = statusStyle

	m := MainModel{
		scanner:    opts.Scanner,
		terminator: opts.Terminator,
		logger:     logger,
		table:      t,
		help:       h,
		keys:       defaultKeyMap(),
		version:    opts.Version,
	}
	m.resize(defaultWidth, defaultHeight)
	m.refresh()
	return m
}

func Start(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

func (m MainModel) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (m MainModel) Bindings() []model.PortBinding {
	return m.bindings
}

func (m MainModel) Selected() (model.PortBinding, bool) {
	i, ok := m.sel.Selected()
	if !ok || i >= len(m.bindings) {
		return model.PortBinding{}, false
	}
	return m.bindings[i], true
}

func (m MainModel) Status() string {
	return m.statusMsg
}

func (m MainModel) Quitting() bool {
	return m.quitting
}
