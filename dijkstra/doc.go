// Package dijkstra provides Dijkstra's shortest-path algorithm for directed
// graphs with non-negative edge weights, generic over the vertex type and
// over the priority queue that backs the frontier.
//
// Overview:
//
//   - New computes, eagerly and once, the shortest distance from a start
//     vertex to every reachable vertex, plus a predecessor tree.
//   - The frontier is any minpq.ExtrinsicMinPQ. Improved distances are applied
//     with ChangePriority when the vertex is already queued and with Add
//     otherwise, so every vertex is queued at most once at a time.
//   - The finished Solver answers Solution(goal), DistTo(v) and Tree() without
//     touching the graph again.
//
// When to use:
//
//   - Exact shortest paths on a static graph where no heuristic is available.
//   - As a baseline for astar (identical results with a zero heuristic) and for
//     dag on acyclic graphs with non-negative weights.
//
// Performance and complexity (with the default OptimizedHeapMinPQ):
//
//   - Time:  O((V + E) log V)
//   - Each reachable vertex is removed from the queue once.
//   - Each improving relaxation costs one Add or ChangePriority, O(log V).
//   - Space: O(V) for distTo, edgeTo and the queue.
//
// Choosing a queue:
//
//   - KindOptimized (default): indexed binary heap, O(log n) everywhere.
//   - KindDoubleMap:           B-tree of priority buckets, O(log n) everywhere.
//   - KindHeap:                plain binary heap, O(n) ChangePriority.
//   - KindUnsorted:            unsorted slice, O(n) RemoveMin. Small graphs only.
//
// Error handling (sentinel errors):
//
//   - core.ErrNilGraph:   the graph is nil.
//   - ErrNegativeWeight:  an examined edge has a negative or NaN weight.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative or NaN value.
//   - ErrBadInfThreshold: WithInfEdgeThreshold received a non-positive or NaN value.
//   - ErrNeighbors:       the graph failed to enumerate a vertex's edges; the
//     graph's own error is wrapped as well.
//   - minpq.ErrUnknownKind: WithQueue received an unknown kind.
//   - core.ErrNoPath:     returned by Solution for a goal that was never reached.
//
// Thread safety:
//
//   - A finished Solver is immutable and safe for concurrent readers.
//   - New itself reads the graph only; concurrent mutation of the graph during
//     construction must be prevented by the caller.
//
// See also:
//
//   - astar: goal-directed search over a core.HeuristicGraph.
//   - dag:   queue-free relaxation in topological order.
package dijkstra
