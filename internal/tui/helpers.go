package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func stripAnsi(str string) string {
	return ansi.Strip(str)
}

// sanitizeName drops escape sequences and control characters from a process
// name before it reaches the terminal.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, stripAnsi(name))
}
