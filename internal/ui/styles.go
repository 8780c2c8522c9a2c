package ui

import "github.com/charmbracelet/lipgloss"

// styleSet holds the preview list styles
type styleSet struct {
	Title    lipgloss.Style
	Count    lipgloss.Style
	Spec     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Divider  lipgloss.Style
	Dim      lipgloss.Style
}

func defaultStyles() styleSet {
	return styleSet{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
		Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
		Spec:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Divider:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
