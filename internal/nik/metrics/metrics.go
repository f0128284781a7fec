package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for NIK generation and validation.
type Metrics struct {
	// Generated identity numbers by mode ("location", "offline") and result ("ok", "error")
	Generated *prometheus.CounterVec

	// Validation outcomes by mode ("full", "format") and outcome ("valid", "invalid", "error")
	Validations *prometheus.CounterVec

	// Full validation latency, including region lookups
	ValidateLatency prometheus.Histogram
}

// New creates metrics registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nik_generated_total",
			Help: "Generated identity numbers by mode and result",
		}, []string{"mode", "result"}),

		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nik_validations_total",
			Help: "Identity number validations by mode and outcome",
		}, []string{"mode", "outcome"}),

		ValidateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "nik_validate_full_duration_seconds",
			Help:    "Duration of full validation including region lookups",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementGenerated records a generation attempt.
func (m *Metrics) IncrementGenerated(mode string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Generated.WithLabelValues(mode, result).Inc()
}

// IncrementValidation records a validation outcome.
func (m *Metrics) IncrementValidation(mode, outcome string) {
	if m != nil {
		m.Validations.WithLabelValues(mode, outcome).Inc()
	}
}

// ObserveValidateLatency records the duration of a full validation.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
