// Package dfs implements depth-first search on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a single root
//   - Post-order, tree depth and parent links in Result
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph.
//   - Memory: O(V) for the explicit stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrNeighborFetch          if Neighbors fails (graph error wrapped).
//   - context.Canceled          if ctx is done.
package dfs

import (
	"github.com/katalvlaran/lvpath/core"
)

// DFS performs depth-first search on g from start. Back edges are simply
// skipped, so DFS never fails on cyclic graphs.
// Returns the partial Result together with any error.
func DFS[V comparable](g core.Graph[V], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	o.AllowCycles = true

	w := newWalker(g, o)
	err := w.run(start)

	return w.res, err
}
