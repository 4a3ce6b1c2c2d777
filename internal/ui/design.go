package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Design centralizes the colors used by command output and forms.
//
// Palette is based on Vitesse Dark Soft:
// https://github.com/antfu/vscode-theme-vitesse/blob/main/themes/vitesse-dark-soft.json
type designTheme struct {
	Primary lipgloss.Color // #4d9375
	Yellow  lipgloss.Color // #e6cc77
	Red     lipgloss.Color // #cb7676

	Text  lipgloss.Color // #dbd7caee
	Muted lipgloss.Color // #dedcd590
}

// Vitesse defines the current global design theme.
var Vitesse = designTheme{
	Primary: lipgloss.Color("#4d9375"),
	Yellow:  lipgloss.Color("#e6cc77"),
	Red:     lipgloss.Color("#cb7676"),

	Text:  lipgloss.Color("#dbd7caee"),
	Muted: lipgloss.Color("#dedcd590"),
}

// KeyStyle returns a bold accent style for setting names.
func KeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary)
}

// ValueStyle returns the style for setting values.
func ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Text)
}

// MutedStyle returns a dim style for hints and paths.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Vitesse.Muted)
}

// FormTheme returns the huh theme used by interactive forms.
func FormTheme() *huh.Theme {
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(14).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(14).Foreground(Vitesse.Primary).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(Vitesse.Primary)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(Vitesse.Primary)
	return theme
}
