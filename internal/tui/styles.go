package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("#00D7FF")
	colorGreen  = lipgloss.Color("#00FF87")
	colorYellow = lipgloss.Color("#FFD700")
	colorRed    = lipgloss.Color("#FF5F5F")
	colorPurple = lipgloss.Color("#AF87FF")
	colorGray   = lipgloss.Color("#626262")
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	sqlStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dimStyle     = lipgloss.NewStyle().Foreground(colorGray)
	spinnerStyle = lipgloss.NewStyle().Foreground(colorPurple)
)
