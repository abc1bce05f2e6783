package attrs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "domattr").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for apply duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors updated by an Applicator.
// A nil *Metrics records nothing.
type Metrics struct {
	applyTotal    *prometheus.CounterVec
	writesTotal   *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	applyDuration prometheus.Histogram
}

// NewMetrics registers the collectors with config.Registry.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "domattr"
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		applyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "apply_total",
			Help:        "Total number of Apply calls by result (mutated, unchanged, error)",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		writesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "writes_total",
			Help:        "Total number of element writes by operation (set, remove, prop)",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "apply_errors_total",
			Help:        "Total number of Apply failures by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		applyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "apply_duration_seconds",
			Help:        "Apply duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

func (m *Metrics) write(op string) {
	if m == nil {
		return
	}
	m.writesTotal.WithLabelValues(op).Inc()
}

func (m *Metrics) result(mutated bool, code string, seconds float64) {
	if m == nil {
		return
	}
	m.applyDuration.Observe(seconds)
	switch {
	case code != "":
		m.applyTotal.WithLabelValues("error").Inc()
		m.errorsTotal.WithLabelValues(code).Inc()
	case mutated:
		m.applyTotal.WithLabelValues("mutated").Inc()
	default:
		m.applyTotal.WithLabelValues("unchanged").Inc()
	}
}
