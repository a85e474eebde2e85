// Package lvpath is a generic shortest-path engine built around
// interchangeable extrinsic min-priority queues.
//
// What is inside:
//
//	minpq/    - four ExtrinsicMinPQ implementations behind one contract:
//	            unsorted array, double map (B-tree), binary heap, index-tracked heap
//	core/     - Edge, Graph, HeuristicGraph, Digraph, PathTree, Solver, Constructor
//	bfs/      - reachability and hop-count traversal
//	dfs/      - post-order traversal, topological sort, cycle reporting
//	dijkstra/ - single-source shortest paths for non-negative weights
//	astar/    - single-pair search guided by EstimatedDistance
//	dag/      - topological relaxation, negative weights allowed, cycles rejected
//	metrics/  - Prometheus instrumentation shared by every solver
//	builder/  - deterministic synthetic graphs for tests and benchmarks
//
// Collaborators built on the engine:
//
//	seam/         - minimum-energy seams through a 2D energy field
//	roadmap/      - great-circle street maps routed with A*
//	graphio/      - YAML graph documents
//	cmd/pathfind/ - command-line front end
//
// Any value usable as a map key can be a vertex. A graph only has to
// answer Neighbors(v), so edges may be stored or generated on demand:
//
//	g := core.NewDigraph[string]()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	s, err := dijkstra.New[string](g, "A", dijkstra.WithQueue[string](minpq.KindDoubleMap))
//	path, err := s.Solution("C") // [A B C]
//
// Library packages never log and never panic on bad input; they return
// sentinel errors that callers match with errors.Is.
package lvpath
