package cmd

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// Styles for command output. Printed through lipgloss.Fprint* so colors
// are downsampled (or stripped) for the writer.
var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	subjectStyle = theme.SubjectName
	dimStyle     = lipgloss.NewStyle().Foreground(theme.TextDim)
	okStyle      = lipgloss.NewStyle().Foreground(theme.Success)
	revStyle     = lipgloss.NewStyle().Foreground(theme.Accent)
	hardStyle    = lipgloss.NewStyle().Foreground(theme.Hard)
)
