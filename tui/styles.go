package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorValid = lipgloss.Color("#10B981")
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorTitle = lipgloss.Color("#7C3AED")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	statusValidStyle = lipgloss.NewStyle().
				Foreground(colorValid).
				Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorError)

	statusMutedStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	logOKStyle = lipgloss.NewStyle().
			Foreground(colorValid)

	logErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	caretStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)
