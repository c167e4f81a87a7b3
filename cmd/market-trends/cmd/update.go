package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardledger/market-trends/internal/config"
	"github.com/cardledger/market-trends/pkg/logger"
	domain "github.com/cardledger/market-trends/pkg/types"
)

var updateDate string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Run the daily snapshot update once",
	Long: "Fetches a fresh aggregate from the marketplace and persists it as the daily " +
		"snapshot. Idempotent: a date that already has a snapshot is left untouched.",
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateDate, "date", "", "snapshot date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	date := time.Now()
	if updateDate != "" {
		date, err = time.Parse("2006-01-02", updateDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", updateDate, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	updater := newUpdater(cfg, st, nil, log)

	log.Info("running snapshot update", "date", domain.DateKey(date))
	if err := updater.UpdateForDate(ctx, date); err != nil {
		return fmt.Errorf("updating snapshot: %w", err)
	}

	log.Info("snapshot update complete", "date", domain.DateKey(date))
	return nil
}
