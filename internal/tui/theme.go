package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the orange/blue form theme shared by all flows
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeCharm()

	orange := lipgloss.Color("#FF8800")
	blue := lipgloss.Color("#5F87FF")

	theme.Focused.Title = theme.Focused.Title.Foreground(orange)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(orange)
	theme.Focused.MultiSelectSelector = theme.Focused.MultiSelectSelector.Foreground(orange)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(orange)
	theme.Focused.SelectedPrefix = theme.Focused.SelectedPrefix.Foreground(orange)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.Background(orange)
	theme.Focused.Description = theme.Focused.Description.Foreground(blue)
	theme.Blurred.Description = theme.Blurred.Description.Foreground(blue)

	return theme
}
