// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/cardledger/market-trends/tools/dashgen/panels"
)

// BuildOverview constructs the Market Trends Overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Market Trends Overview").
		Uid("cmt-overview").
		Tags([]string{"cmt", "market-trends"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: eBay API.
	b.WithRow(dashboard.NewRowBuilder("eBay API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.DailyUsage()).
		WithPanel(panels.LimitHits()))

	// Row 4: Trend Cache.
	b.WithRow(dashboard.NewRowBuilder("Trend Cache").
		WithPanel(panels.CacheHitRatio()).
		WithPanel(panels.FetchRate()).
		WithPanel(panels.FetchErrors()).
		WithPanel(panels.AggregationDuration()))

	// Row 5: Snapshots.
	b.WithRow(dashboard.NewRowBuilder("Snapshots").
		WithPanel(panels.SnapshotWrites()).
		WithPanel(panels.SnapshotSkips()).
		WithPanel(panels.ItemFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
