// Package components provides reusable TUI widgets for the mccost dashboard.
package components

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// cardFrame is the shared rounded border used by every card. outerWidth is
// the total rendered width including the border.
func cardFrame(outerWidth int) lipgloss.Style {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(contentWidth).
		Padding(0, 1)
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// ProviderCost is one provider's spend for the overview card row. Cost is
// pre-formatted; Top marks the highest spender, which gets the bright
// accent.
type ProviderCost struct {
	Provider string
	Cost     string
	Top      bool
}

// CostCardRow renders one card per provider, side by side filling
// totalWidth exactly. Every card carries the same window caption.
func CostCardRow(costs []ProviderCost, windowDays, totalWidth int) string {
	if len(costs) == 0 {
		return ""
	}

	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	costStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	topStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	captionStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	caption := captionStyle.Render(fmt.Sprintf("last %dd", windowDays))
	widths := LayoutRow(totalWidth, len(costs))

	cards := make([]string, len(costs))
	for i, pc := range costs {
		amount := costStyle
		if pc.Top {
			amount = topStyle
		}
		content := labelStyle.Render(pc.Provider) + "\n" +
			amount.Render(pc.Cost) + "\n" +
			caption
		cards[i] = cardFrame(widths[i]).Render(content)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		titleStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true)
		content = titleStyle.Render(title) + "\n" + body
	}
	return cardFrame(outerWidth).Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4 // 2 border + 2 padding
	if w < 10 {
		w = 10
	}
	return w
}
