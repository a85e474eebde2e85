// Package core defines the graph abstractions every solver consumes: the
// immutable weighted Edge, the Graph and HeuristicGraph capabilities, the
// Solver/Constructor pair, and the read-only PathTree a solver freezes its
// results into.
//
// This file declares the generic types, sentinel errors and adapters.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrNoPath         - goal was never reached from the start vertex.
//	ErrSelfLoop       - self-loop when loops are disabled.
//	ErrMultiEdge      - parallel edge when multi-edges are disabled.
//	ErrNilGraph       - a nil Graph was passed to a constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNoPath indicates that the requested goal was never discovered.
	ErrNoPath = errors.New("core: no path to goal")

	// ErrSelfLoop indicates a self-loop was attempted when loops are disabled.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrMultiEdge indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdge = errors.New("core: multi-edges not allowed")

	// ErrNilGraph indicates that a nil Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Edge is a directed, weighted connection between two vertices.
// Edges are immutable values; two edges with the same endpoints and weight
// are indistinguishable.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the edge.
	Weight float64
}

// String renders the edge as "from -> to (weight)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v -> %v (%g)", e.From, e.To, e.Weight)
}

// Graph is the only capability a solver needs from a graph: the outgoing
// edges of a vertex. Implementations may materialize edges or generate them
// on demand, but must return the same set for repeated calls and be safe for
// concurrent read-only use.
//
// A returned error aborts any solver currently consuming the graph.
type Graph[V comparable] interface {
	Neighbors(v V) ([]Edge[V], error)
}

// HeuristicGraph is a Graph that can also estimate the remaining distance
// between two vertices. EstimatedDistance should be admissible (never above
// the true shortest distance) for A* to return optimal paths.
type HeuristicGraph[V comparable] interface {
	Graph[V]
	EstimatedDistance(from, to V) float64
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[V comparable] func(v V) ([]Edge[V], error)

// Neighbors calls f(v).
func (f GraphFunc[V]) Neighbors(v V) ([]Edge[V], error) { return f(v) }

// Heuristic estimates the distance between two vertices.
type Heuristic[V comparable] func(from, to V) float64

// NullHeuristic estimates zero for every pair, which reduces A* to Dijkstra.
func NullHeuristic[V comparable](_, _ V) float64 { return 0 }

// heuristicGraph pairs a Graph with a Heuristic.
type heuristicGraph[V comparable] struct {
	Graph[V]
	h Heuristic[V]
}

func (g heuristicGraph[V]) EstimatedDistance(from, to V) float64 { return g.h(from, to) }

// WithHeuristic lifts g into a HeuristicGraph using h. A nil h means
// NullHeuristic.
func WithHeuristic[V comparable](g Graph[V], h Heuristic[V]) HeuristicGraph[V] {
	if h == nil {
		h = NullHeuristic[V]
	}

	return heuristicGraph[V]{Graph: g, h: h}
}

// Solver is a completed single-source shortest-path computation.
type Solver[V comparable] interface {
	// Solution returns the vertices of the shortest path from the start to
	// goal, inclusive of both. Returns ErrNoPath if goal was never reached.
	Solution(goal V) ([]V, error)
}

// Constructor builds a Solver by running a full computation from start.
// Collaborators such as seam finders accept a Constructor so the solving
// strategy is a plain parameter.
type Constructor[V comparable] func(g Graph[V], start V) (Solver[V], error)

// Stats summarizes the work performed by one solver run.
type Stats struct {
	// Discovered counts vertices that received a finite distance.
	Discovered int

	// Settled counts vertices removed from the frontier (or visited in
	// topological order).
	Settled int

	// Relaxations counts edges that improved a tentative distance.
	Relaxations int
}
