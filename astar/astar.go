package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/minpq"
)

// Solver is a finished A* computation for a fixed (start, goal) pair.
// It is immutable and safe for concurrent reads.
type Solver[V comparable] struct {
	tree  *core.PathTree[V]
	goal  V
	stats core.Stats
}

// New runs A* on g from start toward goal. The frontier priority of a vertex
// is its tentative distance plus g.EstimatedDistance(v, goal).
//
// Returns core.ErrNilGraph, minpq.ErrUnknownKind, ErrNegativeWeight,
// ErrBadHeuristic, or ErrNeighbors wrapping the graph's own error.
func New[V comparable](g core.HeuristicGraph[V], start, goal V, opts ...Option[V]) (s *Solver[V], err error) {
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
		g:      g,
		goal:   goal,
		early:  cfg.EarlyExit,
		pq:     cfg.Queue(),
		distTo: make(map[V]float64),
		edgeTo: make(map[V]core.Edge[V]),
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
		goal:  goal,
		stats: r.stats,
	}, nil
}

// Solution returns the shortest path from the start to the goal, inclusive.
// Returns core.ErrNoPath if the goal was never reached.
func (s *Solver[V]) Solution() ([]V, error) { return s.tree.PathTo(s.goal) }

// Distance returns the length of the shortest path, or +Inf.
func (s *Solver[V]) Distance() float64 { return s.tree.DistTo(s.goal) }

// Goal returns the goal vertex the solver was built for.
func (s *Solver[V]) Goal() V { return s.goal }

// DistTo returns the settled distance to v, or +Inf. With WithEarlyExit
// only vertices settled before the goal are reported.
func (s *Solver[V]) DistTo(v V) float64 { return s.tree.DistTo(v) }

// Tree exposes the frozen search tree.
func (s *Solver[V]) Tree() *core.PathTree[V] { return s.tree }

// Stats reports the work performed by the run.
func (s *Solver[V]) Stats() core.Stats { return s.stats }

type runner[V comparable] struct {
	g      core.HeuristicGraph[V]
	goal   V
	early  bool
	pq     minpq.ExtrinsicMinPQ[V]
	distTo map[V]float64
	edgeTo map[V]core.Edge[V]
	stats  core.Stats
}

func (r *runner[V]) init(start V) error {
	h, err := r.estimate(start)
	if err != nil {
		return err
	}
	r.distTo[start] = 0

	return r.pq.Add(start, h)
}

// estimate returns the heuristic from v to the goal, rejecting values that
// would corrupt the frontier order.
func (r *runner[V]) estimate(v V) (float64, error) {
	h := r.g.EstimatedDistance(v, r.goal)
	if h < 0 || math.IsNaN(h) {
		return 0, fmt.Errorf("%w: h(%v, %v) = %g", ErrBadHeuristic, v, r.goal, h)
	}

	return h, nil
}

func (r *runner[V]) process() error {
	for !r.pq.IsEmpty() {
		u, err := r.pq.RemoveMin()
		if err != nil {
			return err
		}
		r.stats.Settled++
		if r.early && u == r.goal {
			break
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	// With an early exit the frontier still holds tentative entries.
	for !r.pq.IsEmpty() {
		v, _ := r.pq.RemoveMin()
		delete(r.distTo, v)
		delete(r.edgeTo, v)
	}

	return nil
}

func (r *runner[V]) relax(u V) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNeighbors, u, err)
	}

	du := r.distTo[u]
	for _, e := range edges {
		if e.From != u {
			continue
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return fmt.Errorf("%w: edge %v", ErrNegativeWeight, e)
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
		h, err := r.estimate(v)
		if err != nil {
			return err
		}

		r.distTo[v] = newDist
		r.edgeTo[v] = e
		r.stats.Relaxations++
		if r.pq.Contains(v) {
			err = r.pq.ChangePriority(v, newDist+h)
		} else {
			err = r.pq.Add(v, newDist+h)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
