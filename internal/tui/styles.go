package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette
const (
	primaryColor = "#89b4fa" // Blue
	successColor = "#a6e3a1" // Green
	warningColor = "#f9e2af" // Yellow
	errorColor   = "#f38ba8" // Red

	textColor    = "#cdd6f4" // Text
	subtextColor = "#a6adc8" // Subtext0
	mutedColor   = "#6c7086" // Overlay0
	crustColor   = "#11111b" // Crust
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true).
			MarginBottom(1)

	entryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(textColor))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(crustColor)).
			Background(lipgloss.Color(primaryColor)).
			Bold(true)

	issuerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtextColor)).
			Italic(true)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(successColor)).
			Bold(true)

	expiringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor)).
			Bold(true)

	brokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	countdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(successColor))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(mutedColor)).
			Italic(true)
)
