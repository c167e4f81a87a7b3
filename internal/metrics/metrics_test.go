package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, TrendCacheHitsTotal)
	assert.NotNil(t, TrendCacheMissesTotal)
	assert.NotNil(t, TrendCacheInvalidationsTotal)
	assert.NotNil(t, TrendFetchesTotal)
	assert.NotNil(t, TrendFetchErrorsTotal)
	assert.NotNil(t, TrendAggregationDuration)
	assert.NotNil(t, SnapshotWritesTotal)
	assert.NotNil(t, SnapshotSkipsTotal)
	assert.NotNil(t, SnapshotItemFailuresTotal)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
}
