package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Trigger the daily snapshot update",
		Long: "Runs the daily update on the server: aggregates today's listings\n" +
			"and persists a snapshot if one does not already exist.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			status, err := c.RunUpdate(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(status)
			}

			fmt.Println("Daily update completed.")
			return nil
		},
	}
}
