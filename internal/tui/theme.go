package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultThemeName is the theme used when none is configured.
const defaultThemeName = "verscrape"

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the default verscrape theme.
var (
	currentTheme     *huh.Theme
	currentThemeName = defaultThemeName
)

// SetTheme sets the current theme by name.
// Unknown or empty names fall back to the verscrape theme.
func SetTheme(name string) {
	theme := GetTheme(name)
	if name == "" || theme == nil {
		currentTheme = nil
		currentThemeName = defaultThemeName
		return
	}
	currentTheme = theme
	currentThemeName = name
}

// ActiveThemeName returns the name of the theme prompts currently use.
func ActiveThemeName() string {
	return currentThemeName
}

// currentThemeOrDefault returns the current theme for TUI components.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return verscrapeTheme()
	}
	return currentTheme
}

// ValidThemes is the list of supported theme names.
var ValidThemes = []string{
	"verscrape",
	"base",
	"base16",
	"charm",
	"dracula",
}

// GetTheme returns the huh.Theme for the given theme name.
// Returns nil if the theme name is not recognized.
func GetTheme(name string) *huh.Theme {
	switch name {
	case "verscrape":
		return verscrapeTheme()
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	default:
		return nil
	}
}

// verscrapeTheme is the default prompt theme: the base theme with the
// selection accent matched to the printer's info color.
func verscrapeTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color("6")
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(accent)
	return t
}
