package cmd

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/cli"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Total spend per provider and top services",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	o, err := client.FetchOverview(cmd.Context())
	if err != nil {
		return fetchError(err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MULTI-CLOUD COSTS  Last %dd", o.TimeWindowDays)))
	fmt.Println()

	total := 0.0
	rows := make([][]string, 0, len(api.Providers)+2)
	for _, p := range api.Providers {
		cost := o.TotalCostPerProvider[p]
		total += cost
		rows = append(rows, []string{p, cli.FormatCurrency(cost)})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatCurrency(total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Provider", "Total Cost"},
		Rows:    rows,
	}))

	fmt.Println()
	if len(o.TopServices) == 0 {
		fmt.Println(cli.RenderNote("No services to show."))
		return nil
	}

	svcRows := make([][]string, 0, len(o.TopServices))
	for _, svc := range o.TopServices {
		svcRows = append(svcRows, []string{svc.Provider, svc.Service, cli.FormatCurrency(svc.TotalCost)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Top Services",
		Headers: []string{"Provider", "Service", "Total Cost"},
		Rows:    svcRows,
	}))

	return nil
}

// fetchError converts API errors to the user-facing message for CLI output.
func fetchError(err error) error {
	return fmt.Errorf("%s", api.Message(err))
}
