package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	keyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(3).
			Align(lipgloss.Center)
	activeKeyStyle = keyStyle.
			BorderForeground(lipgloss.Color("12")).
			Bold(true).
			Reverse(true)

	dotFilledStyle = lipgloss.NewStyle().Bold(true)
	dotEmptyStyle  = lipgloss.NewStyle().Faint(true)
)

// keypadIndent is the left margin of the keypad at rest. It leaves room for
// the negative shake offset.
const keypadIndent = 10
