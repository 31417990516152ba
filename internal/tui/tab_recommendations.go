package tui

import (
	"fmt"
	"strings"

	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/components"
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const noRecommendationsMessage = "No recommendations right now."

func (a App) renderRecommendationsTab(cw int) string {
	switch a.recommendations.phase {
	case phaseLoading:
		return a.renderLoading("recommendations", cw)
	case phaseError:
		return a.renderError(a.recommendations.errMsg, cw)
	}

	t := theme.Active
	if len(a.recommendations.data) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Render(noRecommendationsMessage)
		return components.ContentCard("Recommendations", empty, cw)
	}

	innerW := components.CardInnerWidth(cw)
	idStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	fromStyle := lipgloss.NewStyle().Foreground(t.Orange)
	toStyle := lipgloss.NewStyle().Foreground(t.Green)

	barW := 20
	if barW > innerW/3 {
		barW = innerW / 3
	}

	var body strings.Builder
	for i, rec := range a.recommendations.data {
		if i > 0 {
			body.WriteString("\n")
		}

		move := fromStyle.Render(rec.CurrentProvider) +
			mutedStyle.Render(" > ") +
			toStyle.Render(rec.RecommendedProvider)

		head := idStyle.Render(truncStr(rec.WorkloadID, innerW-barW-20)) + "  " + move
		savings := components.SavingsBar(rec.EstimatedSavingsPercent, barW)
		gap := innerW - lipgloss.Width(head) - lipgloss.Width(savings)
		if gap < 1 {
			gap = 1
		}
		body.WriteString(head + strings.Repeat(" ", gap) + savings)
		body.WriteString("\n")

		explanation := truncStr(rec.Explanation, innerW-2)
		body.WriteString(mutedStyle.Render("  " + explanation))
		body.WriteString("\n")
	}

	title := fmt.Sprintf("Recommendations (%s)", cli.FormatCount(len(a.recommendations.data)))
	return components.ContentCard(title, strings.TrimRight(body.String(), "\n"), cw)
}
