package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// SnapshotWrites returns a stat panel showing snapshots written in the
// past 48 hours. The job runs once a day, so a healthy value is 1-2.
func SnapshotWrites() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Snapshots (48h)").
		Description("Snapshots written in the last 48 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(cmt_snapshot_writes_total{job="market-trends"}[48h])`, "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SnapshotSkips returns a timeseries panel showing skipped snapshot
// writes broken down by reason.
func SnapshotSkips() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Skips by Reason").
		Description("Skipped snapshot writes (existing date or empty day)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`increase(cmt_snapshot_skips_total{job="market-trends"}[1h])`,
			"{{reason}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ItemFailures returns a stat panel showing snapshot item sample failures
// in the past 24 hours.
func ItemFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Item Sample Failures (24h)").
		Description("Snapshot item sample writes that failed in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(cmt_snapshot_item_failures_total{job="market-trends"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
