package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Amount lipgloss.Style
	Total  lipgloss.Style
	Help   lipgloss.Style
	Toast  lipgloss.Style
	Card   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Label:  lipgloss.NewStyle().Width(14),
		Amount: lipgloss.NewStyle().Width(14).Align(lipgloss.Right),
		Total:  lipgloss.NewStyle().Width(14).Align(lipgloss.Right).Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Toast:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
