// Package dag defines configuration options and errors for the
// topological-order shortest-path solver on directed acyclic graphs.
//
// Options:
//
//	– AllowCycles: accept graphs with reachable cycles (best effort).
//	– Metrics:     optional Prometheus instrumentation.
//
// Errors (sentinel):
//
//	– core.ErrNilGraph  if the provided graph is nil.
//	– ErrCycle          if a cycle is reachable from the start; the error
//	                    also matches dfs.ErrCycleDetected and carries a
//	                    *dfs.CycleError with the offending vertices.
//	– ErrInvalidWeight  if a NaN edge weight is encountered.
//	– ErrNeighbors      if the graph fails to enumerate a vertex's edges.
package dag

import (
	"errors"

	"github.com/katalvlaran/lvpath/metrics"
)

// Algorithm is the label used for metrics.
const Algorithm = "dag"

// Sentinel errors returned by the DAG solver.
var (
	// ErrCycle indicates that the subgraph reachable from the start is not acyclic.
	ErrCycle = errors.New("dag: cycle reachable from start")

	// ErrInvalidWeight indicates a NaN edge weight. Negative weights are valid.
	ErrInvalidWeight = errors.New("dag: invalid edge weight")

	// ErrNeighbors indicates that the graph failed to enumerate outgoing edges.
	ErrNeighbors = errors.New("dag: neighbor iteration error")
)

// Options configures the behavior of the DAG solver.
type Options struct {
	// AllowCycles disables cycle rejection. Construction still terminates,
	// but distances on or behind a cycle are not guaranteed to be shortest.
	AllowCycles bool

	// Metrics, when non-nil, records one observation per construction.
	Metrics *metrics.SolverMetrics
}

// Option represents a functional option for configuring the DAG solver.
type Option func(*Options)

// DefaultOptions rejects cycles and records no metrics.
func DefaultOptions() Options {
	return Options{}
}

// WithAllowCycles accepts cyclic input instead of failing with ErrCycle.
func WithAllowCycles() Option {
	return func(o *Options) { o.AllowCycles = true }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.SolverMetrics) Option {
	return func(o *Options) { o.Metrics = m }
}
