package cmd

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"

	"github.com/spf13/cobra"
)

var recommendationsCmd = &cobra.Command{
	Use:     "recommendations",
	Aliases: []string{"recs"},
	Short:   "Cross-cloud workload placement recommendations",
	RunE:    runRecommendations,
}

func init() {
	rootCmd.AddCommand(recommendationsCmd)
}

func runRecommendations(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	recs, err := client.FetchRecommendations(cmd.Context())
	if err != nil {
		return fetchError(err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECOMMENDATIONS"))
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println(cli.RenderNote("No recommendations right now."))
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.WorkloadID,
			rec.CurrentProvider,
			rec.RecommendedProvider,
			cli.FormatSavings(rec.EstimatedSavingsPercent),
			truncate(rec.Explanation, 48),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Workload", "From", "To", "Est. Savings", "Why"},
		Rows:    rows,
	}))

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
