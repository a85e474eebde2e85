// Package dag solves single-source shortest paths on directed acyclic graphs
// without a priority queue: vertices reachable from the start are put in
// topological order and every edge is relaxed exactly once in that order.
package dag

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dfs"
)

// Solver is a finished DAG shortest-path computation from a fixed start.
// It is immutable and safe for concurrent reads.
type Solver[V comparable] struct {
	tree  *core.PathTree[V]
	order []V
	stats core.Stats
}

// New runs the topological-order relaxation on g from start.
//
// Steps:
//  1. Collect the vertices reachable from start (bfs).
//  2. Order them by reverse DFS post-order (dfs.TopologicalSort).
//  3. Set every distance to +Inf except the start, then relax the outgoing
//     edges of each vertex in that order.
//
// Returns core.ErrNilGraph, ErrCycle (also matching dfs.ErrCycleDetected),
// ErrInvalidWeight, or ErrNeighbors wrapping the graph's own error.
func New[V comparable](g core.Graph[V], start V, opts ...Option) (s *Solver[V], err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, core.ErrNilGraph
	}

	var stats core.Stats
	done := cfg.Metrics.Timer(Algorithm)
	defer func() { done(stats, err) }()

	order, err := sortReachable(g, start, cfg.AllowCycles)
	if err != nil {
		return nil, err
	}

	distTo := make(map[V]float64, len(order))
	for _, v := range order {
		distTo[v] = math.Inf(1)
	}
	distTo[start] = 0
	edgeTo := make(map[V]core.Edge[V])

	for _, u := range order {
		stats.Settled++
		du := distTo[u]
		if math.IsInf(du, 1) {
			continue
		}
		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, fmt.Errorf("%w: %v: %w", ErrNeighbors, u, nerr)
		}
		for _, e := range edges {
			if e.From != u {
				continue
			}
			if math.IsNaN(e.Weight) {
				return nil, fmt.Errorf("%w: edge %v", ErrInvalidWeight, e)
			}
			old, ok := distTo[e.To]
			if !ok {
				old = math.Inf(1)
			}
			if nd := du + e.Weight; nd < old {
				distTo[e.To] = nd
				edgeTo[e.To] = e
				stats.Relaxations++
			}
		}
	}

	tree := core.NewPathTree(start, edgeTo, distTo)
	stats.Discovered = tree.Len()

	return &Solver[V]{tree: tree, order: order, stats: stats}, nil
}

// sortReachable returns the vertices reachable from start in topological
// order. Errors from the traversal packages are re-wrapped with this
// package's sentinels.
func sortReachable[V comparable](g core.Graph[V], start V, allowCycles bool) ([]V, error) {
	reach, err := bfs.BFS[V](g, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNeighbors, err)
	}

	var dopts []dfs.Option
	if allowCycles {
		dopts = append(dopts, dfs.WithAllowCycles())
	}
	order, err := dfs.TopologicalSort(g, reach.Order, dopts...)
	switch {
	case err == nil:
		return order, nil
	case errors.Is(err, dfs.ErrCycleDetected):
		return nil, fmt.Errorf("%w: %w", ErrCycle, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrNeighbors, err)
	}
}

// Constructor adapts New into a core.Constructor carrying opts.
func Constructor[V comparable](opts ...Option) core.Constructor[V] {
	return func(g core.Graph[V], start V) (core.Solver[V], error) {
		s, err := New(g, start, opts...)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
}

// Solution returns the shortest path from the start to goal, inclusive.
// Returns core.ErrNoPath if goal is unreachable.
func (s *Solver[V]) Solution(goal V) ([]V, error) { return s.tree.PathTo(goal) }

// DistTo returns the shortest distance to v, or +Inf when unreachable.
// Distances may be negative.
func (s *Solver[V]) DistTo(v V) float64 { return s.tree.DistTo(v) }

// Order returns a copy of the topological order used for relaxation.
func (s *Solver[V]) Order() []V { return append([]V(nil), s.order...) }

// Tree exposes the frozen shortest-path tree.
func (s *Solver[V]) Tree() *core.PathTree[V] { return s.tree }

// Stats reports the work performed by the run. Settled counts the vertices
// processed in topological order.
func (s *Solver[V]) Stats() core.Stats { return s.stats }
