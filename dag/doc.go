// Package dag provides shortest paths on directed acyclic graphs in linear
// time, with support for negative edge weights.
//
// Overview:
//
//   - No priority queue is involved. The vertices reachable from the start
//     are ordered topologically (reverse DFS post-order) and each vertex's
//     outgoing edges are relaxed once, in that order.
//   - Because every predecessor of v is processed before v, distTo[v] is final
//     when v is reached, whatever the sign of the weights.
//
// Cycles:
//
//   - By default a cycle reachable from the start aborts construction with
//     ErrCycle. The error also matches dfs.ErrCycleDetected, and errors.As
//     extracts the *dfs.CycleError listing the cycle.
//   - WithAllowCycles trades the guarantee for best-effort output: the
//     computation terminates, but distances are unspecified where a cycle is
//     involved.
//
// Complexity:
//
//   - Time:   O(V + E) over the reachable subgraph (each edge is read by the
//     bfs pass, the dfs pass and the relaxation pass).
//   - Memory: O(V).
package dag
