// Package core provides the graph vocabulary shared by every shortest-path
// solver in lvpath: generic weighted edges, the Graph and HeuristicGraph
// capabilities, a thread-safe materialized Digraph, and the PathTree that
// solvers freeze their results into.
//
// Vertices are any comparable type V. Solvers never enumerate a whole graph;
// they only ask for the outgoing edges of vertices they have reached, so a
// Graph may equally be a stored adjacency list (Digraph) or a function that
// generates edges on demand (GraphFunc), such as a pixel grid.
//
// Types:
//
//	Edge[V]            immutable {From, To, Weight}
//	Graph[V]           Neighbors(v) ([]Edge[V], error)
//	HeuristicGraph[V]  Graph[V] + EstimatedDistance(from, to) float64
//	GraphFunc[V]       func adapter implementing Graph
//	WithHeuristic      lifts any Graph into a HeuristicGraph
//	Digraph[V]         adjacency list guarded by sync.RWMutex
//	PathTree[V]        read-only edgeTo/distTo tables with PathTo(goal)
//	Solver[V]          Solution(goal) ([]V, error)
//	Constructor[V]     func(g Graph[V], start V) (Solver[V], error)
//	Stats              Discovered / Settled / Relaxations counters
//
// Digraph options:
//
//	WithLoops[V]()             permit self-loops (ErrSelfLoop otherwise)
//	WithMultiEdges[V]()        permit parallel edges (ErrMultiEdge otherwise)
//	WithGraphHeuristic[V](h)   EstimatedDistance returns h(from, to)
//
// Digraph methods:
//
//	AddVertex(v)                     // O(1), idempotent
//	AddEdge(from, to, w) error       // O(1), auto-adds endpoints
//	HasVertex(v), HasEdge(from, to)  // O(1)
//	Neighbors(v) ([]Edge[V], error)  // O(deg v), copy in insertion order
//	Vertices(), Edges()              // O(V), O(V+E), insertion order
//	VertexCount(), EdgeCount()       // O(1)
//	Clone(), Reverse()               // O(V+E)
//	InducedSubgraph(keep)            // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound – Neighbors on an unknown vertex
//	ErrNoPath         – PathTo/Solution for an undiscovered goal
//	ErrSelfLoop       – self-loop when loops are disabled
//	ErrMultiEdge      – parallel edge when multi-edges are disabled
//	ErrNilGraph       – nil Graph passed to a solver
package core
