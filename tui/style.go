package tui

import "github.com/charmbracelet/lipgloss"

// Styles controls prompt rendering.
type Styles struct {
	Question lipgloss.Style
	Hint     lipgloss.Style

	Query       lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Question:    lipgloss.NewStyle().Bold(true),
		Hint:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Reverse(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
