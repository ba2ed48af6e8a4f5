package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayaanshkk/switchboard/internal/config"
)

// Styles holds the lipgloss styles for the board chrome, built once
// from the configured theme.
type Styles struct {
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	ColumnTitle  lipgloss.Style
	Column       lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Subtle       lipgloss.Style
	Help         lipgloss.Style
	ErrorNotice  lipgloss.Style
	InfoNotice   lipgloss.Style
	ErrorScreen  lipgloss.Style
}

// NewStyles builds the style set from a color scheme.
func NewStyles(theme config.ColorScheme) Styles {
	return Styles{
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(0, 2),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.ColumnBorder)).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.CardBorder)).
			Padding(0, 1),
		SelectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.Selected)).
			Padding(0, 1),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Padding(0, 1),
		ErrorNotice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.ErrorFg)).
			Foreground(lipgloss.Color(theme.ErrorFg)).
			Padding(0, 1),
		InfoNotice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.InfoFg)).
			Foreground(lipgloss.Color(theme.InfoFg)).
			Padding(0, 1),
		ErrorScreen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.ErrorFg)).
			Padding(1, 3),
	}
}
