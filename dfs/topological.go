// Package dfs provides ordering algorithms on directed graphs: post-order
// collection from a set of roots and topological sort.
//
// TopologicalSort computes a linear ordering of the vertices reachable from
// the roots such that for every directed edge u→v, u appears before v.
// If a cycle is reachable, a *CycleError (ErrCycleDetected) is returned
// unless WithAllowCycles is given.
// If neighbor iteration fails, ErrNeighborFetch is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvpath/core"
)

// PostOrder runs a DFS from every root in turn, skipping roots already
// visited, and returns all reached vertices in finishing order.
func PostOrder[V comparable](g core.Graph[V], roots []V, opts ...Option) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := newWalker(g, o)
	for _, r := range roots {
		if err := w.run(r); err != nil {
			return nil, err
		}
	}

	return w.res.Order, nil
}

// TopologicalSort returns the reverse post-order of the vertices reachable
// from roots.
func TopologicalSort[V comparable](g core.Graph[V], roots []V, opts ...Option) ([]V, error) {
	post, err := PostOrder(g, roots, opts...)
	if err != nil {
		return nil, err
	}

	return Reverse(post), nil
}

// FindCycle reports one cycle reachable from roots, or nil if the reachable
// subgraph is acyclic.
func FindCycle[V comparable](g core.Graph[V], roots []V, opts ...Option) ([]V, error) {
	opts = append(opts[:len(opts):len(opts)], func(o *Options) { o.AllowCycles = false })
	_, err := PostOrder(g, roots, opts...)

	var ce *CycleError[V]
	switch {
	case err == nil:
		return nil, nil
	case errors.As(err, &ce):
		return ce.Cycle, nil
	default:
		return nil, err
	}
}

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[V any](s []V) []V {
	out := make([]V, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
