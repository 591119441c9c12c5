package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeFault   = "fault"
)

// Metrics holds transform Prometheus metrics
type Metrics struct {
	// Render metrics
	RendersTotal   *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec

	// Lazy view metrics
	ViewParses *prometheus.CounterVec

	registry *prometheus.Registry

	// Snapshot for logs and CLI summaries
	snapshot MetricsSnapshot
	mu       sync.RWMutex
}

// MetricsSnapshot holds running totals
type MetricsSnapshot struct {
	Renders  int64
	Failures int64
	Faults   int64
	Parses   int64
}

// NewMetrics creates metrics registered on a private registry
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.NewRegistry())
}

// NewMetricsWith creates metrics registered on reg
func NewMetricsWith(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RendersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transform_renders_total",
				Help: "Total number of template renders by outcome",
			},
			[]string{"engine", "outcome"},
		),
		RenderDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transform_render_duration_seconds",
				Help:    "Template render duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"engine"},
		),
		ViewParses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transform_view_parses_total",
				Help: "Total number of lazy view parses",
			},
			[]string{"view"},
		),
	}
}

// Registry returns the registry the metrics are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRender records a finished render. Safe on a nil receiver.
func (m *Metrics) RecordRender(engine, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RendersTotal.WithLabelValues(engine, outcome).Inc()
	m.RenderDuration.WithLabelValues(engine).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Renders++
	switch outcome {
	case OutcomeFailure:
		m.snapshot.Failures++
	case OutcomeFault:
		m.snapshot.Faults++
	}
	m.mu.Unlock()
}

// RecordParse records a lazy view parse. Safe on a nil receiver.
func (m *Metrics) RecordParse(view string) {
	if m == nil {
		return
	}
	m.ViewParses.WithLabelValues(view).Inc()

	m.mu.Lock()
	m.snapshot.Parses++
	m.mu.Unlock()
}

// Snapshot returns the running totals. Safe on a nil receiver.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// WriteTextfile writes all metrics in the Prometheus text format, for the
// node_exporter textfile collector
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
