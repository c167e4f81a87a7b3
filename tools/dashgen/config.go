package main

import "errors"

// KnownMetrics is the set of metric names exported by market-trends plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"cmt_http_request_duration_seconds": true,
	"cmt_http_requests_total":           true,

	// Health metrics.
	"cmt_healthz_up": true,
	"cmt_readyz_up":  true,

	// Trend cache metrics.
	"cmt_trend_cache_hits_total":          true,
	"cmt_trend_cache_misses_total":        true,
	"cmt_trend_cache_invalidations_total": true,

	// Aggregation metrics.
	"cmt_trend_fetches_total":                true,
	"cmt_trend_fetch_errors_total":           true,
	"cmt_trend_aggregation_duration_seconds": true,

	// Snapshot metrics.
	"cmt_snapshot_writes_total":        true,
	"cmt_snapshot_skips_total":         true,
	"cmt_snapshot_item_failures_total": true,

	// eBay API metrics.
	"cmt_ebay_api_calls_total":        true,
	"cmt_ebay_daily_usage":            true,
	"cmt_ebay_daily_limit_hits_total": true,

	// Recording rules.
	"cmt:http_requests:rate5m":      true,
	"cmt:http_errors:rate5m":        true,
	"cmt:trend_fetches:rate5m":      true,
	"cmt:trend_fetch_errors:rate5m": true,
	"cmt:cache_hits:rate5m":         true,
	"cmt:cache_misses:rate5m":       true,
	"cmt:ebay_api_calls:rate5m":     true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
