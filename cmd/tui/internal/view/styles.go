package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhasan-dev/finarch/internal/prefs"
)

// Palette carries the theme-dependent styles shared by all views.
type Palette struct {
	Title   lipgloss.Style
	Card    lipgloss.Style
	Income  lipgloss.Style
	Expense lipgloss.Style
	Accent  lipgloss.Style
	Faint   lipgloss.Style
	Error   lipgloss.Style
}

// NewPalette builds the styles for the given theme.
func NewPalette(theme prefs.Theme) Palette {
	var text, faint lipgloss.Color
	if theme == prefs.ThemeLight {
		text = lipgloss.Color("235")
		faint = lipgloss.Color("245")
	} else {
		text = lipgloss.Color("252")
		faint = lipgloss.Color("243")
	}

	return Palette{
		Title: lipgloss.NewStyle().Bold(true).Foreground(text),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 2),
		Income:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Expense: lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Faint:   lipgloss.NewStyle().Foreground(faint),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
