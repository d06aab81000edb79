package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/simpletype/internal/ui/theme"
)

// ProgressBar is a horizontal bar showing how much of a paragraph is typed.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Filled returns the number of filled cells for the bar's width.
func (p ProgressBar) Filled() int {
	filled := int(float64(p.barWidth()) * p.Percent)
	return max(0, min(filled, p.barWidth()))
}

func (p ProgressBar) barWidth() int {
	w := p.Width - lipgloss.Width(p.label())
	if p.ShowPercent {
		w -= 6 // "  100%"
	}
	return max(w, 4)
}

func (p ProgressBar) label() string {
	if p.Label == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	filled := p.Filled()
	empty := p.barWidth() - filled

	var b strings.Builder
	b.WriteString(p.label())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}
	return b.String()
}
