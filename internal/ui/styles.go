package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Core color palette
	primaryColor = lipgloss.Color("#0969DA") // Blue
	accentColor  = lipgloss.Color("#2DA44E") // Green
	warningColor = lipgloss.Color("#D29922") // Orange
	errorColor   = lipgloss.Color("#CF222E") // Red
	dimColor     = lipgloss.Color("#6E7681") // Gray
	linkColor    = lipgloss.Color("#58A6FF") // Light blue
	dateColor    = lipgloss.Color("#A371F7") // Light purple
	sourceColor  = lipgloss.Color("#FFA657") // Light orange

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	TitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	SourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor)

	DateStyle = lipgloss.NewStyle().
			Foreground(dateColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
