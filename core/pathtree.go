// File: pathtree.go
// Role: read-only shortest-path tree produced by a finished solver run.
// Determinism:
//   - PathTo walks predecessor edges from the goal back to the start, so the
//     path is exactly the one recorded by the last improving relaxation.

package core

import "math"

// PathTree holds the edgeTo/distTo tables of a completed run. The start
// vertex has distance 0 and no predecessor edge; every other discovered
// vertex has exactly one predecessor edge, so the edges form a tree rooted at
// the start.
//
// PathTree is immutable after construction and safe for concurrent reads.
type PathTree[V comparable] struct {
	start  V
	edgeTo map[V]Edge[V]
	distTo map[V]float64
}

// NewPathTree freezes the given tables. Ownership of the maps passes to the
// tree; callers must not mutate them afterwards.
func NewPathTree[V comparable](start V, edgeTo map[V]Edge[V], distTo map[V]float64) *PathTree[V] {
	if edgeTo == nil {
		edgeTo = make(map[V]Edge[V])
	}
	if distTo == nil {
		distTo = map[V]float64{start: 0}
	}

	return &PathTree[V]{start: start, edgeTo: edgeTo, distTo: distTo}
}

// Start returns the root of the tree.
func (t *PathTree[V]) Start() V { return t.start }

// DistTo returns the best known distance to v, or +Inf if v was never
// discovered.
func (t *PathTree[V]) DistTo(v V) float64 {
	d, ok := t.distTo[v]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// EdgeTo returns the predecessor edge of v. ok is false for the start vertex
// and for undiscovered vertices.
func (t *PathTree[V]) EdgeTo(v V) (Edge[V], bool) {
	e, ok := t.edgeTo[v]
	return e, ok
}

// HasPathTo reports whether v was reached with a finite distance.
func (t *PathTree[V]) HasPathTo(v V) bool {
	d, ok := t.distTo[v]
	return ok && !math.IsInf(d, 1)
}

// PathTo returns the vertices from the start to goal, inclusive.
// Returns ErrNoPath if goal was never reached.
// Complexity: O(path length).
func (t *PathTree[V]) PathTo(goal V) ([]V, error) {
	if goal == t.start {
		return []V{t.start}, nil
	}
	if !t.HasPathTo(goal) {
		return nil, ErrNoPath
	}

	var rev []V
	v := goal
	for steps := 0; v != t.start; steps++ {
		// A predecessor chain longer than the table means the tables were
		// produced by a run that did not converge (negative cycle).
		if steps > len(t.edgeTo) {
			return nil, ErrNoPath
		}
		rev = append(rev, v)
		e, ok := t.edgeTo[v]
		if !ok {
			return nil, ErrNoPath
		}
		v = e.From
	}
	rev = append(rev, t.start)

	out := make([]V, len(rev))
	for i, u := range rev {
		out[len(rev)-1-i] = u
	}

	return out, nil
}

// Len returns the number of discovered vertices, start included.
func (t *PathTree[V]) Len() int {
	n := 0
	for _, d := range t.distTo {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}
