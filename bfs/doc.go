// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop depths and parent links.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following outgoing edges only.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Edge filtering via WithFilterEdge.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Reachability: the DAG solver calls BFS to collect every vertex
//     reachable from its start before ordering them topologically.
//   - Fewest-edges paths in O(V + E) time.
//
// Determinism
//
//	BFS enqueues edge targets in the order the graph returns them, so the
//	visit sequence is reproducible for any Graph with stable Neighbors.
//
// Complexity (V, E of the reachable subgraph)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string](g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors        if Neighbors fails for any vertex (the graph's own
//     error is wrapped too, so errors.Is(err, core.ErrVertexNotFound) works
//     for an unknown start on a core.Digraph).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
