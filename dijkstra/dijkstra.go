// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm over any core.Graph, on top of an interchangeable
// minpq.ExtrinsicMinPQ frontier.
//
// Notes on implementation choices:
//
//   - Negative weights are detected when their edge is first examined, which
//     aborts construction with ErrNegativeWeight.
//   - Edges whose From differs from the expanded vertex are skipped.
//   - Edges with weight >= InfEdgeThreshold are treated as walls.
//   - The loop stops once the queue minimum exceeds MaxDistance.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/minpq"
)

// Solver is a finished Dijkstra computation from a fixed start vertex.
// It is immutable and safe for concurrent reads.
type Solver[V comparable] struct {
	tree  *core.PathTree[V]
	stats core.Stats
}

// New runs Dijkstra's algorithm on g from start.
//
// Returns core.ErrNilGraph for a nil graph, an option error
// (ErrBadMaxDistance, ErrBadInfThreshold, minpq.ErrUnknownKind),
// ErrNegativeWeight, or ErrNeighbors wrapping the graph's own error.
func New[V comparable](g core.Graph[V], start V, opts ...Option[V]) (s *Solver[V], err error) {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, core.ErrNilGraph
	}

	r := &runner[V]{
		g:       g,
		options: cfg,
		pq:      cfg.Queue(),
		distTo:  make(map[V]float64),
		edgeTo:  make(map[V]core.Edge[V]),
	}
	done := cfg.Metrics.Timer(Algorithm)
	defer func() { done(r.stats, err) }()

	if err = r.init(start); err != nil {
		return nil, err
	}
	if err = r.process(); err != nil {
		return nil, err
	}
	r.stats.Discovered = len(r.distTo)

	return &Solver[V]{
		tree:  core.NewPathTree(start, r.edgeTo, r.distTo),
		stats: r.stats,
	}, nil
}

// Constructor adapts New into a core.Constructor carrying opts.
func Constructor[V comparable](opts ...Option[V]) core.Constructor[V] {
	return func(g core.Graph[V], start V) (core.Solver[V], error) {
		s, err := New(g, start, opts...)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
}

// Solution returns the shortest path from the start to goal, inclusive.
// Returns core.ErrNoPath if goal was never reached.
func (s *Solver[V]) Solution(goal V) ([]V, error) { return s.tree.PathTo(goal) }

// DistTo returns the shortest distance to v, or +Inf when unreachable.
func (s *Solver[V]) DistTo(v V) float64 { return s.tree.DistTo(v) }

// Tree exposes the frozen shortest-path tree.
func (s *Solver[V]) Tree() *core.PathTree[V] { return s.tree }

// Stats reports the work performed by the run.
func (s *Solver[V]) Stats() core.Stats { return s.stats }

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       core.Graph[V]
	options Options[V]
	pq      minpq.ExtrinsicMinPQ[V]
	distTo  map[V]float64
	edgeTo  map[V]core.Edge[V]
	stats   core.Stats
}

// init seeds the frontier with the start vertex at distance 0.
func (r *runner[V]) init(start V) error {
	r.distTo[start] = 0

	return r.pq.Add(start, 0)
}

// process settles vertices in order of distance until the queue is empty
// or the nearest vertex lies beyond MaxDistance.
func (r *runner[V]) process() error {
	for !r.pq.IsEmpty() {
		u, err := r.pq.PeekMin()
		if err != nil {
			return err
		}
		if r.distTo[u] > r.options.MaxDistance {
			break
		}
		if _, err = r.pq.RemoveMin(); err != nil {
			return err
		}
		r.stats.Settled++
		if err = r.relax(u); err != nil {
			return err
		}
	}

	// drop tentative distances that were never settled
	for !r.pq.IsEmpty() {
		v, _ := r.pq.RemoveMin()
		delete(r.distTo, v)
		delete(r.edgeTo, v)
	}

	return nil
}

// relax examines each edge leaving u and applies strictly shorter distances.
func (r *runner[V]) relax(u V) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNeighbors, u, err)
	}

	du := r.distTo[u]
	for _, e := range edges {
		// Safety: skip edges that do not originate from u.
		if e.From != u {
			continue
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edge %v", ErrNegativeWeight, e)
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		v := e.To
		newDist := du + e.Weight
		old, seen := r.distTo[v]
		if seen && newDist >= old {
			continue
		}
		if !seen && math.IsInf(newDist, 1) {
			continue
		}

		r.distTo[v] = newDist
		r.edgeTo[v] = e
		r.stats.Relaxations++
		if r.pq.Contains(v) {
			err = r.pq.ChangePriority(v, newDist)
		} else {
			err = r.pq.Add(v, newDist)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
