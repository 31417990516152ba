package components

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUtilization returns green/yellow/orange/red for a CPU level.
func ColorForUtilization(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// UtilizationBar renders a compact fill bar for a 0.0-1.0 value, colored
// by level. Used for CPU utilization in the comparison table.
func UtilizationBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	t := theme.Active
	bar := progress.New(
		progress.WithSolidFill(ColorForUtilization(pct)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(pct)
}

// SavingsBar renders a labeled fill bar for an estimated savings
// percentage on the 0-100 scale.
func SavingsBar(pct float64, width int) string {
	frac := pct / 100
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	t := theme.Active
	bar := progress.New(
		progress.WithSolidFill(string(t.Green)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	return bar.ViewAs(frac) + " " + pctStyle.Render(fmt.Sprintf("%5.1f%%", pct))
}
