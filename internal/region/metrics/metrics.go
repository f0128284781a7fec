package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the region store.
type Metrics struct {
	// Cache lookups by level ("regency", "district") and result ("hit", "miss")
	CacheLookups *prometheus.CounterVec

	// Source load latencies by level
	LoadLatency *prometheus.HistogramVec

	// Source load failures by level
	LoadFailures *prometheus.CounterVec
}

// New creates region store metrics registered with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nik_region_cache_lookups_total",
			Help: "Region cache lookups by level and result",
		}, []string{"level", "result"}),

		LoadLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nik_region_load_duration_seconds",
			Help:    "Duration of region data loads from the source by level",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"level"}),

		LoadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nik_region_load_failures_total",
			Help: "Region data loads that failed by level",
		}, []string{"level"}),
	}
}

// RecordCacheHit records a cache hit for a level.
func (m *Metrics) RecordCacheHit(level string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(level, "hit").Inc()
	}
}

// RecordCacheMiss records a cache miss for a level.
func (m *Metrics) RecordCacheMiss(level string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(level, "miss").Inc()
	}
}

// ObserveLoad records a source load and whether it failed.
func (m *Metrics) ObserveLoad(level string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.LoadLatency.WithLabelValues(level).Observe(d.Seconds())
	if err != nil {
		m.LoadFailures.WithLabelValues(level).Inc()
	}
}
