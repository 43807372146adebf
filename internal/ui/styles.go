package ui

import (
	"charm.land/lipgloss/v2"
)

// styles bundles the lipgloss styles of the browser chrome. In no-color
// mode every style degrades to plain text.
type styles struct {
	Title      lipgloss.Style
	Breadcrumb lipgloss.Style
	NavBar     lipgloss.Style
	NavBarKey  lipgloss.Style
	Footer     lipgloss.Style
	Status     lipgloss.Style
	Denied     lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			Title:      plain.Bold(true),
			Breadcrumb: plain,
			NavBar:     plain,
			NavBarKey:  plain.Bold(true),
			Footer:     plain,
			Status:     plain,
			Denied:     plain.Bold(true),
		}
	}
	return styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Breadcrumb: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		NavBar:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		NavBarKey:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240")),
		Footer:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("240")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Denied:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
