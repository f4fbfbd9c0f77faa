package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementDonorsRegistered()
	m.IncrementDonorsRegistered()
	m.IncrementInventoryCache(true)
	m.IncrementInventoryCache(false)
	m.IncrementInventoryCache(false)
	m.ObserveRequest("GET", "/api/donors", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DonorsRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InventoryCacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.InventoryCacheMiss))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/donors", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementDonorsRegistered()
		m.IncrementInventoryCache(true)
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
}
