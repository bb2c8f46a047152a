package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type fieldPalette struct {
	border, title, description, selector, selected, unselected string
}

var (
	focusedPalette = fieldPalette{
		border:      ColorTeal500,
		title:       ColorTeal400,
		description: ColorGray500,
		selector:    ColorTeal500,
		selected:    ColorTeal300,
		unselected:  ColorGray500,
	}
	blurredPalette = fieldPalette{
		border:      ColorGray600,
		title:       ColorGray500,
		description: ColorGray600,
		selector:    ColorGray600,
		selected:    ColorGray500,
		unselected:  ColorGray600,
	}
)

func (p fieldPalette) paint(fs *huh.FieldStyles) {
	fs.Base = fs.Base.BorderForeground(lipgloss.Color(p.border))
	fs.Title = fs.Title.Foreground(lipgloss.Color(p.title))
	fs.Description = fs.Description.Foreground(lipgloss.Color(p.description))
	fs.SelectSelector = fs.SelectSelector.Foreground(lipgloss.Color(p.selector))
	fs.SelectedOption = fs.SelectedOption.Foreground(lipgloss.Color(p.selected))
	fs.UnselectedOption = fs.UnselectedOption.Foreground(lipgloss.Color(p.unselected))
}

// Theme is the huh theme of every wizard prompt.
func Theme() *huh.Theme {
	t := huh.ThemeBase()
	focusedPalette.paint(&t.Focused)
	blurredPalette.paint(&t.Blurred)

	t.Focused.Title = t.Focused.Title.Bold(true)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorTeal600))
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(lipgloss.Color(ColorGray500)).
		Background(lipgloss.Color(ColorGray800))

	input := &t.Focused.TextInput
	input.Cursor = input.Cursor.Foreground(lipgloss.Color(focusedPalette.selector))
	input.Prompt = input.Prompt.Foreground(lipgloss.Color(focusedPalette.selector))
	input.Placeholder = input.Placeholder.Foreground(lipgloss.Color(ColorGray500))

	return t
}
