package ui

import "github.com/charmbracelet/lipgloss"

// Fabkit palette, tuned for dark terminal backgrounds
const (
	ColorWhite = "#FFFFFF"

	ColorGray500 = "#6C7585"
	ColorGray600 = "#4E5560"
	ColorGray800 = "#212732"

	ColorTeal300 = "#A3E1D5"
	ColorTeal400 = "#80D0C3"
	ColorTeal500 = "#51B9A9"
	ColorTeal600 = "#2F9589"

	ColorGreen400  = "#63D78E"
	ColorRed400    = "#F87171"
	ColorYellow400 = "#F9C424"
	ColorBlue400   = "#639CFF"
)

var (
	// TitleStyle - wizard headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorTeal500))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorGreen400))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorRed400))

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorYellow400))

	// DimStyle - secondary text such as option descriptions (Gray 500)
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	// CodeStyle - paths and commands
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue400))
)
