package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// market-trends operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cmt-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cmt-alerts",
					Rules: []Rule{
						{
							Alert: "CmtDown",
							Expr:  `absent(up{job="market-trends"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Market Trends is down",
								"description": "The market-trends job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "CmtReadinessDown",
							Expr:  `cmt_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Market Trends readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "CmtHighErrorRate",
							Expr:  `cmt:http_errors:rate5m / cmt:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Market Trends",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "CmtTrendFetchErrors",
							Expr:  `cmt:trend_fetch_errors:rate5m > 0`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Upstream trend fetches are failing",
								"description": "Marketplace fetches have been producing errors for more than 15 minutes; trends are serving stale or empty data.",
							},
						},
						{
							Alert: "CmtSnapshotMissed",
							Expr:  `increase(cmt_snapshot_writes_total[26h]) == 0`,
							For:   "1h",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "No daily snapshot written in over 26 hours",
								"description": "The daily snapshot job has not written a row since its last scheduled run. Check the scheduler and upstream availability.",
							},
						},
						{
							Alert: "CmtEbayQuotaHigh",
							Expr:  `cmt_ebay_daily_usage > 4000`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily usage is above 80% of the quota",
								"description": "Daily eBay API usage has exceeded 4000 calls (limit is 5000).",
							},
						},
						{
							Alert: "CmtEbayLimitReached",
							Expr:  `increase(cmt_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "eBay API daily limit has been reached",
								"description": "The eBay Browse API daily quota has been exhausted. Trend fetches are paused until reset.",
							},
						},
						{
							Alert: "CmtSnapshotItemFailures",
							Expr:  `increase(cmt_snapshot_item_failures_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Snapshot item sample writes are failing",
								"description": "One or more snapshot item samples failed to persist. Snapshot headline rows are unaffected.",
							},
						},
					},
				},
			},
		},
	}
}
