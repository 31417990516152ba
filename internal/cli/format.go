// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// CPUPlaceholder is rendered when a comparison row has no CPU samples.
const CPUPlaceholder = "—"

// FormatCurrency formats a USD amount with thousands separators and two
// decimals, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(v float64) string {
	if math.Signbit(v) {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatCompactCost formats a USD amount for tight spots like chart axes.
// e.g. 1234.5 -> "$1.2k"
func FormatCompactCost(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fk", v/1_000)
	case v >= 100:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatCPU formats an average CPU utilization percentage, rendering the
// placeholder dash when the value is absent.
func FormatCPU(pct *float64) string {
	if pct == nil {
		return CPUPlaceholder
	}
	return fmt.Sprintf("%.1f%%", *pct)
}

// FormatSavings formats an estimated savings percentage (0-100 scale).
func FormatSavings(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount formats an integer with comma separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
