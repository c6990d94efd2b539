package cli

import "github.com/charmbracelet/lipgloss"

var (
	// headerStyle styles section headings in plain-text output.
	headerStyle = lipgloss.NewStyle().Bold(true)

	// labelStyle styles the key column of key/value listings.
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	// scopeStyle styles dependency scope keywords in listings.
	scopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	// mutedStyle de-emphasizes secondary detail.
	mutedStyle = lipgloss.NewStyle().Faint(true)
)
