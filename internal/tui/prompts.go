// Package tui provides terminal detection and interactive prompt helpers
// built on charmbracelet/huh.
package tui

import (
	"github.com/charmbracelet/huh"
)

// Confirm shows a yes/no confirmation prompt and returns the choice.
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// MultiSelect shows a multi-select prompt with the given defaults pre-selected.
func MultiSelect(title, description string, options []huh.Option[string], defaults []string) ([]string, error) {
	selected := append([]string(nil), defaults...)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description(description).
				Options(options...).
				Value(&selected),
		),
	).WithTheme(currentThemeOrDefault())

	if err := form.Run(); err != nil {
		return nil, err
	}
	return selected, nil
}
