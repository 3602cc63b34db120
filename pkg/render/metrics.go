package render

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "strand").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "strand",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus metrics recorded per render.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderErrors   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	chunksEmitted  prometheus.Counter
}

var (
	metricsMu     sync.Mutex
	activeMetrics *Metrics
)

// EnableMetrics registers the render metrics and turns on recording for
// every render in the process. Counters accumulate across renders; the
// render path itself stays free of shared mutable state. Calling
// EnableMetrics again returns the already-active instance.
func EnableMetrics(opts ...MetricsOption) *Metrics {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	if activeMetrics != nil {
		return activeMetrics
	}

	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)
	activeMetrics = &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of renders started",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of renders that ended in an error",
			ConstLabels: config.ConstLabels,
		}, []string{"mode"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"mode"}),

		chunksEmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "chunks_emitted_total",
			Help:        "Total number of chunks delivered to sinks",
			ConstLabels: config.ConstLabels,
		}),
	}
	return activeMetrics
}

// observeRender records one completed render. A no-op until EnableMetrics
// has been called.
func observeRender(mode string, elapsed time.Duration, chunks int, err error) {
	metricsMu.Lock()
	m := activeMetrics
	metricsMu.Unlock()
	if m == nil {
		return
	}

	m.rendersTotal.WithLabelValues(mode).Inc()
	m.renderDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	m.chunksEmitted.Add(float64(chunks))
	if err != nil {
		m.renderErrors.WithLabelValues(mode).Inc()
	}
}
