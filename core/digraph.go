// File: digraph.go
// Role: materialized, thread-safe adjacency-list graph.
// Determinism:
//   - Vertices() returns vertices in insertion order.
//   - Neighbors(v) returns edges in insertion order.
// Concurrency:
//   - A single sync.RWMutex guards vertices and adjacency; reads take RLock.

package core

import "sync"

// DigraphOption configures a Digraph before creation.
type DigraphOption[V comparable] func(g *Digraph[V])

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops[V comparable]() DigraphOption[V] {
	return func(g *Digraph[V]) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges[V comparable]() DigraphOption[V] {
	return func(g *Digraph[V]) { g.allowMulti = true }
}

// WithGraphHeuristic sets the function returned through EstimatedDistance.
func WithGraphHeuristic[V comparable](h Heuristic[V]) DigraphOption[V] {
	return func(g *Digraph[V]) {
		if h != nil {
			g.heuristic = h
		}
	}
}

// Digraph is an in-memory directed, weighted graph. It implements both Graph
// and HeuristicGraph (with NullHeuristic unless WithGraphHeuristic is given).
//
// By default self-loops and parallel edges are rejected, mirroring the
// conservative defaults of most shortest-path inputs.
type Digraph[V comparable] struct {
	mu sync.RWMutex // guards order, adjacency, edgeCount

	// Configuration flags
	allowLoops bool
	allowMulti bool
	heuristic  Heuristic[V]

	// Storage
	order     []V             // vertices in insertion order
	adjacency map[V][]Edge[V] // from → outgoing edges in insertion order
	pairs     map[[2]V]int    // (from,to) → number of parallel edges
	edgeCount int
}

// NewDigraph creates an empty Digraph.
// Complexity: O(1).
func NewDigraph[V comparable](opts ...DigraphOption[V]) *Digraph[V] {
	g := &Digraph[V]{
		heuristic: NullHeuristic[V],
		adjacency: make(map[V][]Edge[V]),
		pairs:     make(map[[2]V]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex inserts v if absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(v)
}

// ensureVertex must be called with mu held for writing.
func (g *Digraph[V]) ensureVertex(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	g.order = append(g.order, v)
}

// AddEdge inserts the directed edge from→to with weight, adding both
// endpoints if needed. Weights are not validated here: solvers decide what
// they accept.
//
// Returns ErrSelfLoop or ErrMultiEdge according to the configuration.
// Complexity: O(1) amortized.
func (g *Digraph[V]) AddEdge(from, to V, weight float64) error {
	if from == to && !g.allowLoops {
		return ErrSelfLoop
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	key := [2]V{from, to}
	if !g.allowMulti && g.pairs[key] > 0 {
		return ErrMultiEdge
	}
	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adjacency[from] = append(g.adjacency[from], Edge[V]{From: from, To: to, Weight: weight})
	g.pairs[key]++
	g.edgeCount++

	return nil
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Digraph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Digraph[V]) HasEdge(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.pairs[[2]V{from, to}] > 0
}

// Neighbors returns a copy of the outgoing edges of v.
// Returns ErrVertexNotFound for unknown vertices.
// Complexity: O(deg(v)).
func (g *Digraph[V]) Neighbors(v V) ([]Edge[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge[V], len(edges))
	copy(out, edges)

	return out, nil
}

// EstimatedDistance applies the configured heuristic.
func (g *Digraph[V]) EstimatedDistance(from, to V) float64 {
	return g.heuristic(from, to)
}

// Vertices returns every vertex in insertion order.
// Complexity: O(V).
func (g *Digraph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every edge, grouped by source in vertex insertion order.
// Complexity: O(V + E).
func (g *Digraph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[V], 0, g.edgeCount)
	for _, v := range g.order {
		out = append(out, g.adjacency[v]...)
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Digraph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Digraph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph: configuration, vertices and edges.
// Complexity: O(V + E).
func (g *Digraph[V]) Clone() *Digraph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Digraph[V]{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		heuristic:  g.heuristic,
		order:      make([]V, len(g.order)),
		adjacency:  make(map[V][]Edge[V], len(g.adjacency)),
		pairs:      make(map[[2]V]int, len(g.pairs)),
		edgeCount:  g.edgeCount,
	}
	copy(clone.order, g.order)
	for v, edges := range g.adjacency {
		clone.adjacency[v] = append([]Edge[V](nil), edges...)
	}
	for k, n := range g.pairs {
		clone.pairs[k] = n
	}

	return clone
}

// Reverse returns a new graph with every edge flipped. Configuration and
// vertex order are preserved; the heuristic is swapped argument-wise.
// Complexity: O(V + E).
func (g *Digraph[V]) Reverse() *Digraph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	h := g.heuristic
	out := &Digraph[V]{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		heuristic:  func(from, to V) float64 { return h(to, from) },
		adjacency:  make(map[V][]Edge[V], len(g.adjacency)),
		pairs:      make(map[[2]V]int, len(g.pairs)),
	}
	for _, v := range g.order {
		out.ensureVertex(v)
	}
	for _, v := range g.order {
		for _, e := range g.adjacency[v] {
			out.adjacency[e.To] = append(out.adjacency[e.To], Edge[V]{From: e.To, To: e.From, Weight: e.Weight})
			out.pairs[[2]V{e.To, e.From}]++
			out.edgeCount++
		}
	}

	return out
}

// InducedSubgraph returns a new graph holding only the vertices in keep and
// the edges whose endpoints are both kept.
// Complexity: O(V + E).
func (g *Digraph[V]) InducedSubgraph(keep map[V]bool) *Digraph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := &Digraph[V]{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		heuristic:  g.heuristic,
		adjacency:  make(map[V][]Edge[V]),
		pairs:      make(map[[2]V]int),
	}
	for _, v := range g.order {
		if keep[v] {
			out.ensureVertex(v)
		}
	}
	for _, v := range g.order {
		if !keep[v] {
			continue
		}
		for _, e := range g.adjacency[v] {
			if !keep[e.To] {
				continue
			}
			out.adjacency[v] = append(out.adjacency[v], e)
			out.pairs[[2]V{e.From, e.To}]++
			out.edgeCount++
		}
	}

	return out
}
