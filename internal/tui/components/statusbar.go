package components

import (
	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the API endpoint (or an unconfigured warning) on the right. updated is
// a pre-formatted fetch timestamp, empty before the first result.
func RenderStatusBar(width int, baseURL string, fetching bool, updated string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	left := " [r]efresh  [?]help  [q]uit"
	switch {
	case fetching:
		left += "  fetching..."
	case updated != "":
		left += "  updated " + updated
	}

	var right string
	if baseURL == "" {
		right = warnStyle.Render("no API configured") + " "
	} else {
		right = baseURL + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
