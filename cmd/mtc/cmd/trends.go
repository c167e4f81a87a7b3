package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func trendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Show the current market summary",
		Long: "Fetches the current aggregated market summary: headline statistics,\n" +
			"the rolling trend series, top movers, and the recent-sales sample.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			summary, err := c.GetTrends(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(summary)
			}

			return printMarketSummary(summary)
		},
	}
}
