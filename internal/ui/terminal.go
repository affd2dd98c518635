package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColors applies a color mode ("auto", "always" or "never").
// In auto mode colors follow whether out is a terminal.
func ConfigureColors(mode string, out *os.File) {
	switch mode {
	case "always":
		EnableColors()
	case "never":
		DisableColors()
	default:
		if IsTerminal(out) {
			EnableColors()
		} else {
			DisableColors()
		}
	}
}
