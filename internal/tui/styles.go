package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/quadro/internal/config"
)

// Styles are computed once from the color scheme
type Styles struct {
	Header         lipgloss.Style
	Column         lipgloss.Style
	SelectedColumn lipgloss.Style
	ColumnTitle    lipgloss.Style
	Task           lipgloss.Style
	SelectedTask   lipgloss.Style
	GrabbedTask    lipgloss.Style
	Empty          lipgloss.Style
	Input          lipgloss.Style
	Info           lipgloss.Style
	Error          lipgloss.Style
	Hint           lipgloss.Style
	HelpBox        lipgloss.Style
}

// NewStyles builds styles from a color scheme
func NewStyles(cs config.ColorScheme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Title)).
			Padding(0, 1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.ColumnBorder)).
			Padding(0, 1),
		SelectedColumn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.SelectedBorder)).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Accent)).
			Align(lipgloss.Center),
		Task: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Normal)),
		SelectedTask: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Normal)).
			Background(lipgloss.Color(cs.SelectedBg)),
		GrabbedTask: lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.Color(cs.Normal)).
			Background(lipgloss.Color(cs.GrabbedBg)),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Subtle)).
			Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(cs.Accent)).
			Padding(0, 1),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.InfoFg)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.ErrorFg)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Subtle)),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.Accent)).
			Padding(0, 1),
	}
}
