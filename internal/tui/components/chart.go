package components

import (
	"fmt"
	"strings"

	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// eighth blocks, empty to full
var barBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders a vertical bar chart of cost values. Bar heights are
// proportional to value/max. The caller is responsible for the all-zero
// empty state; BarChart returns "" when there is nothing to draw.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 || width < 15 || height < 3 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		return ""
	}

	t := theme.Active

	// Y-axis labels: max at the top, 0 on the baseline.
	topLabel := cli.FormatCompactCost(maxVal)
	yLabelW := lipgloss.Width(topLabel)
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 2
	barW := (chartW - (n-1)*gap) / n
	if barW < 2 {
		barW = 2
	}
	if barW > 8 {
		barW = 8
	}
	axisLen := n*barW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(color)
	brightStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := maxVal * float64(row) / float64(height)
		rowBottom := maxVal * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = topLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}

			// The tallest bar gets the bright accent at its tip.
			style := barStyle
			if v == maxVal && row == height {
				style = brightStyle
			}

			switch {
			case v >= rowTop:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(style.Render(strings.Repeat(string(barBlocks[idx]), barW)))
			default:
				b.WriteString(strings.Repeat(" ", barW))
			}
		}
		b.WriteString("\n")
	}

	// Baseline with 0 label.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// X-axis labels centered under each bar.
	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		for i, lbl := range labels {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(labelStyle.Render(centerLabel(lbl, barW)))
		}
	}

	return b.String()
}

// centerLabel fits lbl into width columns, truncating or centering.
func centerLabel(lbl string, width int) string {
	runes := []rune(lbl)
	if len(runes) > width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	right := width - len(runes) - left
	return strings.Repeat(" ", left) + lbl + strings.Repeat(" ", right)
}
