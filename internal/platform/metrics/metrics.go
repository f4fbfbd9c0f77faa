package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DonorsRegistered    prometheus.Counter
	InventoryCacheHits  prometheus.Counter
	InventoryCacheMiss  prometheus.Counter
}

// New creates the collectors and registers them with reg.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "blood_donation_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blood_donation_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DonorsRegistered: f.NewCounter(prometheus.CounterOpts{
			Name: "blood_donation_donors_registered_total",
			Help: "Total number of donors registered",
		}),
		InventoryCacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "blood_donation_inventory_cache_hits_total",
			Help: "Inventory listings served from cache",
		}),
		InventoryCacheMiss: f.NewCounter(prometheus.CounterOpts{
			Name: "blood_donation_inventory_cache_misses_total",
			Help: "Inventory listings loaded from the store",
		}),
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) IncrementDonorsRegistered() {
	if m == nil {
		return
	}
	m.DonorsRegistered.Inc()
}

func (m *Metrics) IncrementInventoryCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.InventoryCacheHits.Inc()
		return
	}
	m.InventoryCacheMiss.Inc()
}
