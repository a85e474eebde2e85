// Package astar defines configuration options and errors for the A*
// single-pair shortest-path solver.
//
// Options:
//
//	– Queue:     which minpq implementation backs the frontier (default KindOptimized).
//	– EarlyExit: stop as soon as the goal leaves the frontier.
//	– Metrics:   optional Prometheus instrumentation.
//
// Errors (sentinel):
//
//	– core.ErrNilGraph  if the provided graph is nil.
//	– ErrNegativeWeight if a negative or NaN edge weight is encountered.
//	– ErrBadHeuristic   if the heuristic returns NaN or a negative estimate.
//	– ErrNeighbors      if the graph fails to enumerate a vertex's edges.
package astar

import (
	"errors"

	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/minpq"
)

// Algorithm is the label used for metrics.
const Algorithm = "astar"

// Sentinel errors returned by the A* implementation.
var (
	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was encountered.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrBadHeuristic indicates that EstimatedDistance returned NaN or a negative value.
	ErrBadHeuristic = errors.New("astar: heuristic must be a non-negative number")

	// ErrNeighbors indicates that the graph failed to enumerate outgoing edges.
	ErrNeighbors = errors.New("astar: neighbor iteration error")
)

// Options configures the behavior of the A* solver.
type Options[V comparable] struct {
	// Queue builds the frontier priority queue.
	Queue minpq.Factory[V]

	// EarlyExit stops the search once the goal is removed from the frontier.
	// With an admissible heuristic the goal distance is final at that point.
	EarlyExit bool

	// Metrics, when non-nil, records one observation per construction.
	Metrics *metrics.SolverMetrics

	err error
}

// Option represents a functional option for configuring A*.
type Option[V comparable] func(*Options[V])

// DefaultOptions returns Options with the optimized heap, exhaustive search
// and no metrics.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Queue: func() minpq.ExtrinsicMinPQ[V] { return minpq.NewOptimizedHeapMinPQ[V]() },
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

// WithEarlyExit stops the search when the goal is settled instead of
// draining the frontier.
func WithEarlyExit[V comparable]() Option[V] {
	return func(o *Options[V]) { o.EarlyExit = true }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics[V comparable](m *metrics.SolverMetrics) Option[V] {
	return func(o *Options[V]) { o.Metrics = m }
}
