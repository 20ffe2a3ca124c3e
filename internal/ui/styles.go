package ui

import "github.com/charmbracelet/lipgloss"

// This file centralizes the lipgloss styles used by the reporter output.

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("63")). // Purple
			Padding(0, 1)

	artifactStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("86")) // Cyan

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
)
