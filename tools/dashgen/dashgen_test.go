package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cardledger/market-trends/tools/dashgen/dashboards"
	"github.com/cardledger/market-trends/tools/dashgen/rules"
	"github.com/cardledger/market-trends/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	builder := dashboards.BuildOverview()
	dash, err := builder.Build()
	require.NoError(t, err)

	// Verify dashboard metadata.
	require.NotNil(t, dash.Uid)
	assert.Equal(t, "cmt-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "Market Trends Overview", *dash.Title)

	// Verify template variable.
	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	// Verify we have 5 rows.
	assert.Len(t, dash.Panels, 5)

	// Count total inner panels.
	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 17, totalPanels)

	// Validate PromQL and metrics.
	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "cmt-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "cmt-recording", group.Name)
	require.Len(t, group.Rules, 7)

	expectedRecords := []string{
		"cmt:http_requests:rate5m",
		"cmt:http_errors:rate5m",
		"cmt:trend_fetches:rate5m",
		"cmt:trend_fetch_errors:rate5m",
		"cmt:cache_hits:rate5m",
		"cmt:cache_misses:rate5m",
		"cmt:ebay_api_calls:rate5m",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.NotEmpty(t, rule.Expr)
	}

	// Verify YAML marshaling works.
	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "cmt-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "cmt-alerts", group.Name)
	require.Len(t, group.Rules, 8)

	expectedAlerts := []string{
		"CmtDown",
		"CmtReadinessDown",
		"CmtHighErrorRate",
		"CmtTrendFetchErrors",
		"CmtSnapshotMissed",
		"CmtEbayQuotaHigh",
		"CmtEbayLimitReached",
		"CmtSnapshotItemFailures",
	}
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Expr)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}
}

func TestRuleExprsValid(t *testing.T) {
	t.Parallel()

	var exprs []string
	for _, g := range rules.RecordingRules().Spec.Groups {
		for _, r := range g.Rules {
			exprs = append(exprs, r.Expr)
		}
	}
	for _, g := range rules.AlertRules().Spec.Groups {
		for _, r := range g.Rules {
			exprs = append(exprs, r.Expr)
		}
	}

	result := validate.Exprs(exprs, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestValidateExprs_CatchesBadPromQL(t *testing.T) {
	t.Parallel()

	result := validate.Exprs([]string{`rate(cmt_http_requests_total[5m`}, KnownMetrics)
	assert.False(t, result.Ok())
}

func TestValidateExprs_FlagsUnknownMetric(t *testing.T) {
	t.Parallel()

	result := validate.Exprs([]string{`rate(cmt_nonexistent_total[5m])`}, KnownMetrics)
	assert.True(t, result.Ok())
	assert.NotEmpty(t, result.Warnings)
}
