package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CacheHitRatio returns a timeseries panel showing the trend cache hit
// ratio as a percentage.
func CacheHitRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Cache Hit Ratio %").
		Description("Trend cache hits as percentage of all reads").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`cmt:cache_hits:rate5m / (cmt:cache_hits:rate5m + cmt:cache_misses:rate5m) * 100`,
			"hit %", "A",
		)).
		Unit("percent").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FetchRate returns a timeseries panel showing upstream aggregation
// fetches per minute.
func FetchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fetches / min").
		Description("Rate of upstream marketplace fetches per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`cmt:trend_fetches:rate5m * 60`, "fetches/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FetchErrors returns a timeseries panel showing upstream fetch errors
// per minute.
func FetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fetch Errors / min").
		Description("Rate of upstream fetch errors per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`cmt:trend_fetch_errors:rate5m * 60`, "errors/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// AggregationDuration returns a timeseries panel showing the p95
// aggregation pass duration.
func AggregationDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Aggregation Duration (p95)").
		Description("95th percentile aggregation pass duration").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(cmt_trend_aggregation_duration_seconds_bucket{job="market-trends"}[5m])) by (le))`,
			"p95",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
