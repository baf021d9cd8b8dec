package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	// Status style for info messages
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	// Error style for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	// Success style for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	// Warning style for benign but noteworthy outcomes
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EBCB8B"))

	// Folder names
	FolderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#81A1C1")).
			Bold(true)
)
