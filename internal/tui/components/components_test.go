package components

import (
	"strings"
	"testing"

	"github.com/Kaushik523/Multi-cloud-cost/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 3},
		{99, 3},
		{7, 2},
		{120, 4},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d, want %d", tt.total, tt.n, sum, tt.total)
		}
	}
}

func TestContentCardWidth(t *testing.T) {
	card := ContentCard("Title", "body", 40)
	for _, line := range strings.Split(card, "\n") {
		if got := lipgloss.Width(line); got != 40 {
			t.Errorf("card line width = %d, want 40: %q", got, line)
		}
	}
}

func TestCostCardRowWidthAndCaption(t *testing.T) {
	costs := []ProviderCost{
		{Provider: "AWS", Cost: "$1.00"},
		{Provider: "AZURE", Cost: "$2.00", Top: true},
		{Provider: "GCP", Cost: "$3.00"},
	}
	row := CostCardRow(costs, 30, 90)

	lines := strings.Split(row, "\n")
	if got := lipgloss.Width(lines[0]); got != 90 {
		t.Errorf("card row width = %d, want 90", got)
	}
	if want := "last 30d"; !strings.Contains(row, want) {
		t.Errorf("card row missing window caption %q", want)
	}
	if got := strings.Count(row, "last 30d"); got != 3 {
		t.Errorf("caption rendered %d times, want one per card", got)
	}
}

func TestBarChartEmptyInputs(t *testing.T) {
	if got := BarChart(nil, nil, theme.Active.Blue, 60, 10); got != "" {
		t.Errorf("empty values should render nothing, got %q", got)
	}
	if got := BarChart([]float64{0, 0}, []string{"A", "B"}, theme.Active.Blue, 60, 10); got != "" {
		t.Errorf("all-zero values should render nothing, got %q", got)
	}
	if got := BarChart([]float64{5}, []string{"A"}, theme.Active.Blue, 10, 10); got != "" {
		t.Errorf("too-narrow chart should render nothing, got %q", got)
	}
}

func TestBarChartShowsLabelsAndAxis(t *testing.T) {
	out := BarChart([]float64{100, 50, 25}, []string{"AWS", "AZURE", "GCP"}, theme.Active.Blue, 60, 8)
	for _, want := range []string{"AWS", "AZURE", "GCP", "0└"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
}

func TestUtilizationBarWidth(t *testing.T) {
	bar := UtilizationBar(0.5, 20)
	if got := lipgloss.Width(bar); got != 20 {
		t.Errorf("bar width = %d, want 20", got)
	}
}
