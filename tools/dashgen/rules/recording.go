package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "cmt-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "cmt-recording",
					Rules: []Rule{
						{
							Record: "cmt:http_requests:rate5m",
							Expr:   `sum(rate(cmt_http_requests_total[5m]))`,
						},
						{
							Record: "cmt:http_errors:rate5m",
							Expr:   `sum(rate(cmt_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "cmt:trend_fetches:rate5m",
							Expr:   `rate(cmt_trend_fetches_total[5m])`,
						},
						{
							Record: "cmt:trend_fetch_errors:rate5m",
							Expr:   `rate(cmt_trend_fetch_errors_total[5m])`,
						},
						{
							Record: "cmt:cache_hits:rate5m",
							Expr:   `rate(cmt_trend_cache_hits_total[5m])`,
						},
						{
							Record: "cmt:cache_misses:rate5m",
							Expr:   `rate(cmt_trend_cache_misses_total[5m])`,
						},
						{
							Record: "cmt:ebay_api_calls:rate5m",
							Expr:   `rate(cmt_ebay_api_calls_total[5m])`,
						},
					},
				},
			},
		},
	}
}
