package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_AllVariablesNonNil(t *testing.T) {
	t.Parallel()

	vars := []struct {
		name string
		val  any
	}{
		{"SweepRunsTotal", SweepRunsTotal},
		{"SweepAssetsVerified", SweepAssetsVerified},
		{"SweepAssetsFailed", SweepAssetsFailed},
		{"SweepTransitions", SweepTransitions},
		{"SweepLatency", SweepLatency},
		{"SyncRunsTotal", SyncRunsTotal},
		{"SyncAssetsUpserted", SyncAssetsUpserted},
		{"SyncDispatchDropped", SyncDispatchDropped},
		{"RoyaltyReconciled", RoyaltyReconciled},
		{"RoyaltyFailed", RoyaltyFailed},
		{"GatewayCallsTotal", GatewayCallsTotal},
		{"GatewayRateLimitWaits", GatewayRateLimitWaits},
		{"EventsPublished", EventsPublished},
	}

	for _, v := range vars {
		assert.NotNilf(t, v.val, "%s should not be nil", v.name)
	}
}

func TestMetrics_CounterIncrement(t *testing.T) {
	t.Parallel()

	counter := SweepTransitions.WithLabelValues("test-chain", "lost")
	before := testutil.ToFloat64(counter)
	counter.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	assert.NotPanics(t, func() {
		SweepAssetsFailed.WithLabelValues("test-chain", "transient").Inc()
		GatewayCallsTotal.WithLabelValues("test", "getNFTs", "ok").Inc()
		SweepLatency.Observe(1.5)
		SyncDispatchDropped.Inc()
	})
}
