// Package dfs defines types and options for depth-first traversal,
// post-order collection and topological sorting over a core.Graph.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS,
	// PostOrder, TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during an
	// operation that requires an acyclic graph.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// CycleError reports the cycle that made an ordering impossible.
// Cycle lists the vertices along the back edge path; the last element equals
// the first. errors.Is(err, ErrCycleDetected) holds for every CycleError.
type CycleError[V comparable] struct {
	Cycle []V
}

// Error implements error.
func (e *CycleError[V]) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, v := range e.Cycle {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(parts, " -> "))
}

// Unwrap exposes ErrCycleDetected.
func (e *CycleError[V]) Unwrap() error { return ErrCycleDetected }

// Option configures traversal behavior. Options carry no vertex type, so the
// same values work for every V.
type Option func(*Options)

// Options holds configurable parameters for traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// AllowCycles makes PostOrder and TopologicalSort ignore back edges
	// instead of failing with a CycleError. The resulting order is then
	// only a best effort.
	AllowCycles bool
}

// DefaultOptions returns Options with a Background context and strict
// cycle checking.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAllowCycles returns an Option that tolerates cycles.
func WithAllowCycles() Option {
	return func(o *Options) { o.AllowCycles = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its depth in the DFS tree.
	Depth map[V]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// Roots do not appear in this map.
	Parent map[V]V
}

// Visited reports whether v was reached.
func (r *Result[V]) Visited(v V) bool {
	_, ok := r.Depth[v]
	return ok
}
