package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/Kaushik523/Multi-cloud-cost/internal/api"
	"github.com/Kaushik523/Multi-cloud-cost/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL  string
	flagTimeout time.Duration
	flagDays    int
)

var rootCmd = &cobra.Command{
	Use:   "mccost",
	Short: "Multi-cloud cost dashboard CLI",
	Long:  "Track spend across AWS, Azure, and GCP: totals, provider comparison, and placement recommendations.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAPIURL, "api-url", "u", "", "Cost API base URL (overrides env and config)")
	rootCmd.PersistentFlags().DurationVarP(&flagTimeout, "timeout", "t", 10*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (0 = configured default)")
}

// resolveWindowDays returns the time window sent to the API: the --days
// flag when given, otherwise the configured default.
func resolveWindowDays() int {
	if flagDays > 0 {
		return flagDays
	}
	cfg, _ := config.Load()
	return cfg.General.TimeWindowDays
}

// resolveBaseURL returns the API base URL, preferring the --api-url flag,
// then environment variables, then the config file. Empty means unconfigured.
func resolveBaseURL() string {
	if flagAPIURL != "" {
		return flagAPIURL
	}
	config.LoadEnv()
	cfg, _ := config.Load()
	return config.ResolveBaseURL(cfg)
}

// newClient is the shared client constructor used by all fetching commands.
// It fails fast when no base URL is configured, before any network I/O.
func newClient() (*api.Client, error) {
	baseURL := resolveBaseURL()
	if baseURL == "" {
		return nil, errors.New(api.UnconfiguredMessage + " Run `mccost setup` or set MCCOST_API_URL.")
	}
	return api.New(baseURL, flagTimeout, resolveWindowDays()), nil
}
