package cmd

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"

	"github.com/spf13/cobra"
)

var comparisonCmd = &cobra.Command{
	Use:     "comparison",
	Aliases: []string{"compare"},
	Short:   "Compare providers by cost, utilization, and workload count",
	RunE:    runComparison,
}

func init() {
	rootCmd.AddCommand(comparisonCmd)
}

func runComparison(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	data, err := client.FetchComparison(cmd.Context())
	if err != nil {
		return fetchError(err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROVIDER COMPARISON"))
	fmt.Println()

	if len(data) == 0 {
		fmt.Println(cli.RenderNote("No comparison data."))
		return nil
	}

	api.SortByTotalCost(data)

	rows := make([][]string, 0, len(data))
	for _, row := range data {
		rows = append(rows, []string{
			row.Provider,
			cli.FormatCurrency(row.TotalCost),
			cli.FormatCPU(row.AvgCPUUtilization),
			cli.FormatCount(row.WorkloadCount),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Provider", "Total Cost", "Avg CPU", "Workloads"},
		Rows:    rows,
	}))

	return nil
}
