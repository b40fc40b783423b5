package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics observes every timed lookup on a private registry, for export to
// a node-exporter textfile.
type Metrics struct {
	registry   *prometheus.Registry
	lookups    *prometheus.HistogramVec
	hops       prometheus.Histogram
	mismatches prometheus.Counter
	rows       prometheus.Counter
}

// NewMetrics registers the benchmark collectors. constLabels are attached
// to every series (for example the run id).
func NewMetrics(constLabels map[string]string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "octree",
			Subsystem:   "bench",
			Name:        "lookup_seconds",
			Help:        "Latency of a single lookup, by method.",
			Buckets:     prometheus.ExponentialBuckets(50e-9, 2, 20),
			ConstLabels: constLabels,
		}, []string{"method"}),
		hops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "octree",
			Subsystem:   "bench",
			Name:        "find_hops",
			Help:        "Link hops taken by a single Find.",
			Buckets:     prometheus.ExponentialBuckets(1, 2, 16),
			ConstLabels: constLabels,
		}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "octree",
			Subsystem:   "bench",
			Name:        "mismatches_total",
			Help:        "Queries on which Find disagreed with a linear scan.",
			ConstLabels: constLabels,
		}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "octree",
			Subsystem:   "bench",
			Name:        "rows_total",
			Help:        "Batch sizes completed.",
			ConstLabels: constLabels,
		}),
	}
	m.registry.MustRegister(m.lookups, m.hops, m.mismatches, m.rows)

	return m
}

func (m *Metrics) observeLookup(method Method, d time.Duration) {
	m.lookups.WithLabelValues(string(method)).Observe(d.Seconds())
}

func (m *Metrics) observeHops(hops int) { m.hops.Observe(float64(hops)) }

func (m *Metrics) addMismatch() { m.mismatches.Inc() }

func (m *Metrics) addRow() { m.rows.Inc() }

// Gatherer exposes the registry, for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes all series in the text exposition format, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
