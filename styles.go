package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	maxHelpWidth = 78
	helpIndent   = 2
)

var (
	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"})

	plainHelp = !term.IsTerminal(int(os.Stdout.Fd())) ||
		termenv.EnvColorProfile() == termenv.Ascii
)

// keyword renders a highlighted word in help output.
func keyword(s string) string {
	if plainHelp {
		return s
	}
	return keywordStyle.Render(s)
}

// paragraph wraps and indents help text to a readable column.
func paragraph(s string) string {
	width := maxHelpWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}
	return indent.String(wordwrap.String(s, width-helpIndent), helpIndent)
}
