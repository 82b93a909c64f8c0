package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("86")  // Cyan
	ColorAccent  = lipgloss.Color("212") // Pink
	ColorSuccess = lipgloss.Color("78")  // Green
	ColorDanger  = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("241") // Gray
	ColorBorder  = lipgloss.Color("240") // Dark gray
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DetailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(22)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	RuinStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)
)
