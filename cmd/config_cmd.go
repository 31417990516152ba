// Package cmd implements the mccost CLI commands.
package cmd

import (
	"fmt"

	"github.com/Kaushik523/Multi-cloud-cost/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	baseURL, source := baseURLWithSource(cfg)
	if baseURL != "" {
		fmt.Printf("    Base URL: %s (from %s)\n", baseURL, source)
	} else {
		fmt.Println("    Base URL: not configured")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default time window: %dd\n", cfg.General.TimeWindowDays)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `mccost setup` to reconfigure.")
	return nil
}

// baseURLWithSource reports the resolved base URL and where it came from,
// mirroring the precedence used by resolveBaseURL.
func baseURLWithSource(cfg config.Config) (string, string) {
	if flagAPIURL != "" {
		return flagAPIURL, "--api-url flag"
	}
	return config.BaseURLSource(cfg)
}
