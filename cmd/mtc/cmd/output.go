package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/cardledger/market-trends/internal/api/client"
	domain "github.com/cardledger/market-trends/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printMarketSummary(s *domain.MarketSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Average Price:\t$%.2f\n", s.MarketMovement.AveragePrice)
	tw.writef("Percent Change:\t%+.2f%%\n", s.MarketMovement.PercentChange)
	tw.writef("Total Sold:\t%d\n", s.MarketMovement.TotalSold)
	tw.writef("Highest Sale:\t$%.2f\n", s.MarketMovement.HighestSale)
	tw.writef("Lowest Sale:\t$%.2f\n", s.MarketMovement.LowestSale)
	if err := tw.finish(); err != nil {
		return err
	}

	if len(s.TopGainers) > 0 {
		fmt.Println("\nTop Gainers:")
		if err := printMoversTable(s.TopGainers); err != nil {
			return err
		}
	}
	if len(s.TopLosers) > 0 {
		fmt.Println("\nTop Losers:")
		if err := printMoversTable(s.TopLosers); err != nil {
			return err
		}
	}
	if len(s.RecentSales) > 0 {
		fmt.Println("\nRecent Sales:")
		if err := printRecentSalesTable(s.RecentSales); err != nil {
			return err
		}
	}
	return nil
}

func printMoversTable(movers []domain.Mover) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tPRICE\tMEDIAN\tCHANGE\n")
	for i := range movers {
		tw.writef("%s\t$%.2f\t$%.2f\t%+.1f%%\n",
			truncate(movers[i].Name, 40),
			movers[i].CurrentPrice,
			movers[i].PreviousPrice,
			movers[i].PriceChange,
		)
	}
	return tw.finish()
}

func printRecentSalesTable(sales []domain.RecentSale) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tPRICE\tCATEGORY\tDATE\n")
	for i := range sales {
		tw.writef("%s\t$%.2f\t%s\t%s\n",
			truncate(sales[i].Title, 40),
			sales[i].Price,
			sales[i].Category,
			sales[i].SoldDate,
		)
	}
	return tw.finish()
}

func printSnapshotsTable(snapshots []domain.TrendSnapshot) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("DATE\tAVG\tHIGH\tLOW\tSOLD\tCHANGE\n")
	for i := range snapshots {
		s := &snapshots[i]
		tw.writef("%s\t$%.2f\t$%.2f\t$%.2f\t%d\t%+.2f%%\n",
			domain.DateKey(s.SnapshotDate),
			s.AveragePrice,
			s.HighestSale,
			s.LowestSale,
			s.TotalSold,
			s.PercentChange,
		)
	}
	return tw.finish()
}

func printSnapshotDetail(d *apiclient.SnapshotDetail) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Date:\t%s\n", domain.DateKey(d.SnapshotDate))
	tw.writef("Average Price:\t$%.2f\n", d.AveragePrice)
	tw.writef("Highest Sale:\t$%.2f\n", d.HighestSale)
	tw.writef("Lowest Sale:\t$%.2f\n", d.LowestSale)
	tw.writef("Total Sold:\t%d\n", d.TotalSold)
	tw.writef("Percent Change:\t%+.2f%%\n", d.PercentChange)
	tw.writef("Created:\t%s\n", d.CreatedAt.Format("2006-01-02 15:04:05"))
	if err := tw.finish(); err != nil {
		return err
	}

	if len(d.Items) == 0 {
		return nil
	}

	fmt.Println("\nItem Sample:")
	tw = newTabWriter(os.Stdout)
	tw.writef("TITLE\tPRICE\tCURRENCY\tCATEGORY\n")
	for i := range d.Items {
		tw.writef("%s\t$%.2f\t%s\t%s\n",
			truncate(d.Items[i].Title, 40),
			d.Items[i].Price,
			d.Items[i].Currency,
			d.Items[i].Category,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
