package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func snapshotsCmd() *cobra.Command {
	snapshotsRoot := &cobra.Command{
		Use:   "snapshots",
		Short: "Browse daily trend snapshots",
	}

	snapshotsRoot.AddCommand(
		snapshotsListCmd(),
		snapshotsGetCmd(),
	)

	return snapshotsRoot
}

func snapshotsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			snapshots, err := c.ListSnapshots(context.Background(), limit)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(snapshots)
			}

			if len(snapshots) == 0 {
				fmt.Println("No snapshots found.")
				return nil
			}

			return printSnapshotsTable(snapshots)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum snapshots to return (server default if 0)")

	return cmd
}

func snapshotsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <date>",
		Short: "Show one snapshot with its item sample",
		Long:  "Shows the snapshot for the given date (YYYY-MM-DD) including the stored top-priced item sample.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			detail, err := c.GetSnapshot(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(detail)
			}

			return printSnapshotDetail(detail)
		},
	}
}
