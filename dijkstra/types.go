// Package dijkstra defines configuration options and errors for the
// Dijkstra shortest-path solver.
//
// Options:
//
//	– Queue:            which minpq implementation backs the frontier (default KindOptimized).
//	– MaxDistance:      vertices farther than this are never settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Metrics:          optional Prometheus instrumentation.
//
// Errors (sentinel):
//
//	– core.ErrNilGraph   if the provided graph is nil.
//	– ErrNegativeWeight  if a negative or NaN edge weight is encountered.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
//	– ErrNeighbors       if the graph fails to enumerate a vertex's edges.
//
// Example usage:
//
//	s, err := dijkstra.New[string](g, "A", dijkstra.WithQueue[string](minpq.KindDoubleMap))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := s.Solution("D")
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/minpq"
)

// Algorithm is the label used for metrics.
const Algorithm = "dijkstra"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNeighbors indicates that the graph failed to enumerate outgoing edges.
	ErrNeighbors = errors.New("dijkstra: neighbor iteration error")
)

// Options configures the behavior of the Dijkstra solver.
type Options[V comparable] struct {
	// Queue builds the frontier priority queue.
	Queue minpq.Factory[V]

	// MaxDistance caps the distances explored. Default +Inf.
	MaxDistance float64

	// InfEdgeThreshold marks edges with weight >= threshold as walls. Default +Inf.
	InfEdgeThreshold float64

	// Metrics, when non-nil, records one observation per construction.
	Metrics *metrics.SolverMetrics

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns Options with sensible defaults:
//   - Queue:            OptimizedHeapMinPQ.
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Metrics:          nil.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Queue:            func() minpq.ExtrinsicMinPQ[V] { return minpq.NewOptimizedHeapMinPQ[V]() },
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithQueue selects the priority queue implementation by kind.
// An unknown kind is reported as minpq.ErrUnknownKind by New.
func WithQueue[V comparable](kind minpq.Kind) Option[V] {
	return func(o *Options[V]) {
		f, err := minpq.FactoryFor[V](kind)
		if err != nil {
			o.err = err
			return
		}
		o.Queue = f
	}
}

// WithQueueFactory installs a custom priority queue constructor.
func WithQueueFactory[V comparable](f minpq.Factory[V]) Option[V] {
	return func(o *Options[V]) {
		if f != nil {
			o.Queue = f
		}
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max are neither settled nor recorded.
func WithMaxDistance[V comparable](max float64) Option[V] {
	return func(o *Options[V]) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
func WithInfEdgeThreshold[V comparable](threshold float64) Option[V] {
	return func(o *Options[V]) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: %g", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics[V comparable](m *metrics.SolverMetrics) Option[V] {
	return func(o *Options[V]) { o.Metrics = m }
}
