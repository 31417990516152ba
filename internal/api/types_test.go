package api

import "testing"

func TestSortByTotalCostDescending(t *testing.T) {
	rows := []ProviderComparison{
		{Provider: "A", TotalCost: 50},
		{Provider: "B", TotalCost: 100},
	}

	SortByTotalCost(rows)

	if rows[0].Provider != "B" || rows[1].Provider != "A" {
		t.Fatalf("order = [%s, %s], want [B, A]", rows[0].Provider, rows[1].Provider)
	}
}

func TestSortByTotalCostStableForTies(t *testing.T) {
	rows := []ProviderComparison{
		{Provider: "AWS", TotalCost: 10},
		{Provider: "AZURE", TotalCost: 10},
		{Provider: "GCP", TotalCost: 20},
	}

	SortByTotalCost(rows)

	got := []string{rows[0].Provider, rows[1].Provider, rows[2].Provider}
	want := []string{"GCP", "AWS", "AZURE"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestMaxProviderCost(t *testing.T) {
	tests := []struct {
		name  string
		costs map[string]float64
		want  float64
	}{
		{"mixed", map[string]float64{"AWS": 12, "AZURE": 99.5, "GCP": 3}, 99.5},
		{"all zero", map[string]float64{"AWS": 0, "AZURE": 0, "GCP": 0}, 0},
		{"empty", map[string]float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &OverviewSummary{TotalCostPerProvider: tt.costs}
			if got := o.MaxProviderCost(); got != tt.want {
				t.Fatalf("MaxProviderCost = %v, want %v", got, tt.want)
			}
		})
	}
}
