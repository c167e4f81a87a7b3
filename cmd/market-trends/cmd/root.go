// Package cmd implements the CLI commands for the market-trends server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "market-trends",
	Short: "Aggregate and serve trading card market trends",
	Long: "An API service that aggregates eBay listings for a configured trading card " +
		"search into market trend summaries, caches them for low-latency reads, and " +
		"persists one immutable snapshot per day for historical charting.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
