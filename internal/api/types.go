package api

import "sort"

// Providers is the fixed display order for the clouds the backend tracks.
// The overview page always renders all three, even when a provider has no
// spend in the window.
var Providers = []string{"AWS", "AZURE", "GCP"}

// OverviewSummary is the aggregate returned by GET /summary/overview.
// It is a read-only snapshot for a fixed time window; the client never
// mutates or merges it across fetches.
type OverviewSummary struct {
	TimeWindowDays       int                `json:"time_window_days"`
	TotalCostPerProvider map[string]float64 `json:"total_cost_per_provider"`
	TopServices          []ServiceCost      `json:"top_services"`
}

// ServiceCost is one entry in the overview's top-services list.
type ServiceCost struct {
	Provider  string  `json:"provider"`
	Service   string  `json:"service"`
	TotalCost float64 `json:"total_cost"`
}

// ProviderComparison is one row of GET /summary/comparison.
// AvgCPUUtilization is nil when the backend has no performance samples
// for the provider in the window.
type ProviderComparison struct {
	Provider          string   `json:"provider"`
	TotalCost         float64  `json:"total_cost"`
	AvgCPUUtilization *float64 `json:"avg_cpu_utilization"`
	WorkloadCount     int      `json:"workload_count"`
}

// Recommendation is one cross-cloud placement suggestion from GET /recommendations.
type Recommendation struct {
	WorkloadID              string  `json:"workload_id"`
	CurrentProvider         string  `json:"current_provider"`
	RecommendedProvider     string  `json:"recommended_provider"`
	EstimatedSavingsPercent float64 `json:"estimated_savings_percent"`
	Explanation             string  `json:"explanation"`
}

// SortByTotalCost orders comparison rows most expensive first.
// The sort is stable so equal-cost providers keep their API order.
func SortByTotalCost(rows []ProviderComparison) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCost > rows[j].TotalCost
	})
}

// MaxProviderCost returns the largest per-provider total in the overview,
// or 0 when every provider is at zero spend.
func (o *OverviewSummary) MaxProviderCost() float64 {
	maxCost := 0.0
	for _, c := range o.TotalCostPerProvider {
		if c > maxCost {
			maxCost = c
		}
	}
	return maxCost
}
