package format

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for command output
var (
	SuccessColor = lipgloss.Color("#43BF6D") // green - success markers
	ErrorColor   = lipgloss.Color("#FF5555") // red - failures
	MutedColor   = lipgloss.Color("#626262") // gray - secondary info
	AccentColor  = lipgloss.Color("#7D56F4") // purple - names and keys
)

// Shared styles for command output
var (
	NameStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// IsTerminal reports whether stdout is a terminal. Styled rendering is
// skipped when output is piped.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// styled renders s with style when stdout is a terminal, plain
// otherwise.
func styled(style lipgloss.Style, s string) string {
	if !IsTerminal() {
		return s
	}
	return style.Render(s)
}
