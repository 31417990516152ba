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

const emptyChartMessage = "No cost data recorded for this window."

func (a App) renderOverviewTab(cw int) string {
	switch a.overview.phase {
	case phaseLoading:
		return a.renderLoading("overview", cw)
	case phaseError:
		return a.renderError(a.overview.errMsg, cw)
	}

	o := a.overview.data
	t := theme.Active
	var b strings.Builder

	// Row 1: one cost card per provider, fixed AWS/AZURE/GCP order.
	// Providers without spend still get a card at $0.00.
	maxCost := o.MaxProviderCost()
	costs := make([]components.ProviderCost, 0, len(api.Providers))
	for _, p := range api.Providers {
		c := o.TotalCostPerProvider[p]
		costs = append(costs, components.ProviderCost{
			Provider: p,
			Cost:     cli.FormatCurrency(c),
			Top:      maxCost > 0 && c == maxCost,
		})
	}
	b.WriteString(components.CostCardRow(costs, o.TimeWindowDays, cw))
	b.WriteString("\n")

	// Row 2: cost-per-provider chart. All-zero data gets a textual empty
	// state rather than a degenerate zero-height chart.
	title := fmt.Sprintf("Cost per Provider (%dd)", o.TimeWindowDays)
	if maxCost <= 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Render(emptyChartMessage)
		b.WriteString(components.ContentCard(title, empty, cw))
	} else {
		values := make([]float64, len(api.Providers))
		for i, p := range api.Providers {
			values[i] = o.TotalCostPerProvider[p]
		}
		chart := components.BarChart(values, api.Providers, t.Blue, components.CardInnerWidth(cw), 10)
		b.WriteString(components.ContentCard(title, chart, cw))
	}
	b.WriteString("\n")

	b.WriteString(a.renderTopServices(o, cw))

	return b.String()
}

// renderTopServices renders the overview's most expensive services.
func (a App) renderTopServices(o *api.OverviewSummary, cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if len(o.TopServices) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No services to show.")
		return components.ContentCard("Top Services", empty, cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	costStyle := lipgloss.NewStyle().Foreground(t.Green)

	costW := 12
	providerW := 8
	serviceW := innerW - providerW - costW - 2
	if serviceW < 10 {
		serviceW = 10
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %-*s %*s",
		providerW, "Provider", serviceW, "Service", costW, "Total")))
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	for _, svc := range o.TopServices {
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%-*s ", providerW, svc.Provider)))
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", serviceW, truncStr(svc.Service, serviceW))))
		body.WriteString(costStyle.Render(fmt.Sprintf(" %*s", costW, cli.FormatCurrency(svc.TotalCost))))
		body.WriteString("\n")
	}

	return components.ContentCard("Top Services", strings.TrimRight(body.String(), "\n"), cw)
}
