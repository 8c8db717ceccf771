package main

import "github.com/charmbracelet/lipgloss"

// Shared TUI styles. The palette follows the kuuki.design theme:
// gold accents on a dark terminal.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CCA806"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleBody = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	styleBoxActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#CCA806")).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CCA806"))

	styleTab = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CCA806"))

	styleYes = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f87171"))

	styleNo = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ade80"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))

	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
