package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label      string
	LabelWidth int // pad labels to line bars up; 0 means natural width
	Ratio      float64
	Width      int
	Caption    string // replaces the percentage when set
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, ratio float64, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Ratio: ratio,
		Width: width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += theme.SubjectName.Render(label) + "  "
	}

	suffix := p.Caption
	if suffix == "" {
		suffix = fmt.Sprintf("%d%%", int(p.Ratio*100))
	}
	suffix = "  " + suffix

	barWidth := max(p.Width-lipgloss.Width(result)-lipgloss.Width(suffix), 4)

	filled := max(0, min(int(float64(barWidth)*p.Ratio), barWidth))
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", empty))

	return result + theme.Hint.Render(suffix)
}
