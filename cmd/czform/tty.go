package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	bodyStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

// isInteractive reports whether the operator can be prompted. Prompts read
// stdin and render on stderr, so stdout may be redirected (hook mode).
func isInteractive() bool {
	return promptable(term.IsTerminal, int(os.Stdin.Fd()), int(os.Stderr.Fd()))
}

func promptable(isTerminal func(fd int) bool, in, errOut int) bool {
	return isTerminal(in) && isTerminal(errOut)
}

// renderPreview styles the message for the operator; the header line is
// highlighted and the rest indented.
func renderPreview(message string) string {
	header, rest, _ := strings.Cut(message, "\n")
	out := headerStyle.Render(header)
	if rest != "" {
		out += "\n" + bodyStyle.Render(rest)
	}
	return out
}
