package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// plainOutput reports whether fancy terminal output should be suppressed:
// not a terminal, or a color-less profile (which also honors NO_COLOR).
func plainOutput() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return true
	}
	return termenv.EnvColorProfile() == termenv.Ascii
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if plainOutput() {
		return s
	}
	return pterm.Bold.Sprint(s)
}
