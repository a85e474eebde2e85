package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// frame is one entry of the explicit DFS stack: a Gray vertex, its
// outgoing edges and the index of the next edge to explore.
type frame[V comparable] struct {
	v     V
	edges []core.Edge[V]
	next  int
}

// walker runs an iterative three-color DFS over an explicit stack of frames.
type walker[V comparable] struct {
	graph       core.Graph[V]
	ctx         context.Context
	allowCycles bool

	state map[V]int
	stack []frame[V]
	res   *Result[V]
}

func newWalker[V comparable](g core.Graph[V], o Options) *walker[V] {
	return &walker[V]{
		graph:       g,
		ctx:         o.Ctx,
		allowCycles: o.AllowCycles,
		state:       make(map[V]int),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
}

// push marks v Gray and loads its outgoing edges.
func (w *walker[V]) push(v V) error {
	edges, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNeighborFetch, v, err)
	}
	w.state[v] = Gray
	w.res.Depth[v] = len(w.stack)
	w.stack = append(w.stack, frame[V]{v: v, edges: edges})

	return nil
}

// run explores everything reachable from root that is still White,
// appending finished vertices to res.Order.
func (w *walker[V]) run(root V) error {
	if w.state[root] != White {
		return nil
	}
	if err := w.push(root); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next == len(top.edges) {
			// all descendants explored
			w.state[top.v] = Black
			w.res.Order = append(w.res.Order, top.v)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++
		// Safety: skip edges that do not originate from the current vertex.
		if e.From != top.v {
			continue
		}

		switch w.state[e.To] {
		case White:
			w.res.Parent[e.To] = top.v
			if err := w.push(e.To); err != nil {
				return err
			}
		case Gray:
			if !w.allowCycles {
				return w.cycleTo(e.To)
			}
		}
	}

	return nil
}

// cycleTo builds a CycleError for the back edge top→v, where v is Gray.
func (w *walker[V]) cycleTo(v V) error {
	start := len(w.stack) - 1
	for start > 0 && w.stack[start].v != v {
		start--
	}
	cycle := make([]V, 0, len(w.stack)-start+1)
	for _, f := range w.stack[start:] {
		cycle = append(cycle, f.v)
	}
	cycle = append(cycle, v)

	return &CycleError[V]{Cycle: cycle}
}
