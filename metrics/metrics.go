// Package metrics instruments solver runs with Prometheus collectors.
//
// A SolverMetrics is registered on a caller-supplied prometheus.Registerer so
// libraries never touch the global default registry. Every method is safe to
// call on a nil *SolverMetrics, which lets solvers instrument unconditionally.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvpath/core"
)

// Namespace prefixes every metric name.
const Namespace = "lvpath"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// SolverMetrics groups the collectors shared by all solvers. Every collector
// carries an "algorithm" label (dijkstra, astar, dag).
type SolverMetrics struct {
	Runs        *prometheus.CounterVec
	Settled     *prometheus.CounterVec
	Relaxations *prometheus.CounterVec
	Discovered  *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
}

// New registers the solver collectors on reg. A nil reg falls back to a
// fresh private registry, which is convenient in tests.
func New(reg prometheus.Registerer) *SolverMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &SolverMetrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solver_runs_total",
			Help:      "Total number of solver constructions, by outcome",
		}, []string{"algorithm", "outcome"}),
		Settled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solver_settled_vertices_total",
			Help:      "Vertices removed from the frontier or visited in topological order",
		}, []string{"algorithm"}),
		Relaxations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "solver_relaxations_total",
			Help:      "Edge relaxations that improved a tentative distance",
		}, []string{"algorithm"}),
		Discovered: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solver_discovered_vertices",
			Help:      "Vertices reached with a finite distance per run",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solver_duration_seconds",
			Help:      "Wall time of one complete solver construction",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
		}, []string{"algorithm"}),
	}
}

// Observe records one finished run. Failed runs only count toward Runs.
func (m *SolverMetrics) Observe(algorithm string, stats core.Stats, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Runs.WithLabelValues(algorithm, OutcomeError).Inc()
		return
	}
	m.Runs.WithLabelValues(algorithm, OutcomeOK).Inc()
	m.Settled.WithLabelValues(algorithm).Add(float64(stats.Settled))
	m.Relaxations.WithLabelValues(algorithm).Add(float64(stats.Relaxations))
	m.Discovered.WithLabelValues(algorithm).Observe(float64(stats.Discovered))
	m.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// Timer returns a function that, when called, observes the run started now.
//
//	done := m.Timer("dijkstra")
//	...
//	done(stats, err)
func (m *SolverMetrics) Timer(algorithm string) func(stats core.Stats, err error) {
	start := time.Now()
	return func(stats core.Stats, err error) {
		m.Observe(algorithm, stats, time.Since(start), err)
	}
}
