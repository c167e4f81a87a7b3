package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Invalidate the server-side trend cache",
		Long: "Drops the cached market summary so the next trends request\n" +
			"fetches fresh data from the marketplace.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.RefreshTrends(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(status)
			}

			fmt.Println("Trend cache invalidated.")
			return nil
		},
	}
}
