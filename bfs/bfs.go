// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop depths and parent links.
//
// BFS ignores edge weights: it answers reachability and fewest-edges
// questions. The DAG solver uses it to collect every vertex reachable from
// the start before ordering them.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph core.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad options,
// ErrNeighbors (wrapping the graph's error) for graph failures, ctx.Err() on
// cancellation, or any user-supplied hook error.
//
// Complexity: O(V + E) over the reachable subgraph.
func BFS[V comparable](g core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result[V]{
			Start:  start,
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors retrieves outgoing edges, skips those not leaving item.v,
// applies filtering and MaxDepth, and enqueues each unseen target. Returns ErrNeighbors on lookup failure.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %v: %w", ErrNeighbors, item.v, err)
	}
	for _, e := range edges {
		if e.From != item.v {
			continue
		}
		if !w.opts.FilterEdge(e) {
			continue
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Depth[e.To] = nextDepth
		w.res.Parent[e.To] = item.v
		w.queue = append(w.queue, queueItem[V]{v: e.To, depth: nextDepth})
	}

	return nil
}
