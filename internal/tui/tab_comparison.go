package tui

import (
	"fmt"
	"strings"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/components"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderComparisonTab(cw int) string {
	switch a.comparison.phase {
	case phaseLoading:
		return a.renderLoading("comparison", cw)
	case phaseError:
		return a.renderError(a.comparison.errMsg, cw)
	}

	t := theme.Active
	if len(a.comparison.data) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No comparison data.")
		return components.ContentCard("Provider Comparison", empty, cw)
	}

	// Sort a copy; the fetched slice stays in API order so a re-render
	// after a retry starts from the same input.
	rows := append([]api.ProviderComparison(nil), a.comparison.data...)
	api.SortByTotalCost(rows)

	innerW := components.CardInnerWidth(cw)
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	providerStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	costStyle := lipgloss.NewStyle().Foreground(t.Green)

	providerW := 9
	costW := 14
	countW := 10
	barW := innerW - providerW - costW - countW - 11
	if barW > 24 {
		barW = 24
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %-*s %*s",
		providerW, "Provider", costW, "Total Cost", barW+7, "Avg CPU", countW, "Workloads")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for _, row := range rows {
		body.WriteString(providerStyle.Render(fmt.Sprintf("%-*s ", providerW, row.Provider)))
		body.WriteString(costStyle.Render(fmt.Sprintf("%*s ", costW, cli.FormatCurrency(row.TotalCost))))
		body.WriteString(a.renderCPUCell(row.AvgCPUUtilization, barW))
		body.WriteString(mutedStyle.Render(fmt.Sprintf(" %*s", countW, cli.FormatCount(row.WorkloadCount))))
		body.WriteString("\n")
	}

	return components.ContentCard("Provider Comparison", strings.TrimRight(body.String(), "\n"), cw)
}

// renderCPUCell draws a utilization bar plus percentage, or the dash
// placeholder when the backend had no samples.
func (a App) renderCPUCell(cpu *float64, barW int) string {
	t := theme.Active
	if cpu == nil {
		// Pad by display width; the dash placeholder is multi-byte.
		pad := strings.Repeat(" ", barW+7-lipgloss.Width(cli.CPUPlaceholder))
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render(cli.CPUPlaceholder) + pad
	}
	if barW < 4 {
		return fmt.Sprintf("%-*s", barW+7, cli.FormatCPU(cpu))
	}
	return components.UtilizationBar(*cpu/100, barW) + fmt.Sprintf(" %6s", cli.FormatCPU(cpu))
}
