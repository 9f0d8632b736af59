// Package telemetry exposes the Prometheus counters and histograms the
// triegraph CLI records around a build run.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and histograms recorded around one
// triegraph build pipeline invocation, covering the three trie builders
// and the complexity estimator.
type Metrics struct {
	BuildsTotal       *prometheus.CounterVec
	BuildDuration     *prometheus.HistogramVec
	PairsEmittedTotal *prometheus.CounterVec
	SaturationTotal   prometheus.Counter
	FastPathTotal     *prometheus.CounterVec
	NodesProcessed    prometheus.Gauge
}

// New registers and returns a fresh Metrics set under namespace/subsystem
// against reg. Pass prometheus.DefaultRegisterer in production; tests
// should pass a fresh prometheus.NewRegistry() to avoid duplicate
// registration panics across test cases.
func New(reg prometheus.Registerer, namespace, subsystem string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BuildsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "builds_total",
				Help:      "Total number of triegraph build runs, by builder and outcome.",
			},
			[]string{"builder", "status"},
		),
		BuildDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "build_duration_seconds",
				Help:      "Wall-clock duration of a triegraph build run.",
				Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"builder"},
		),
		PairsEmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "pairs_emitted_total",
				Help:      "Total (kmer, position) pairs emitted by a trie builder.",
			},
			[]string{"builder"},
		),
		SaturationTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "complexity_saturation_total",
				Help:      "Number of nodes whose complexity estimate saturated at the ceiling.",
			},
		),
		FastPathTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "position_bfs_fast_path_total",
				Help:      "Position-BFS starts resolved by each fast path (short_kmer, short_next, fast_split, normal).",
			},
			[]string{"path"},
		),
		NodesProcessed: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "nodes_processed",
				Help:      "Number of graph nodes processed by the most recent build run.",
			},
		),
	}
}

// ObserveBuild records the outcome and duration of one build run.
func (m *Metrics) ObserveBuild(builder string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.BuildsTotal.WithLabelValues(builder, status).Inc()
	m.BuildDuration.WithLabelValues(builder).Observe(d.Seconds())
}

// Handler returns the HTTP handler serving the default registry's
// metrics in Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
