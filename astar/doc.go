// Package astar implements A* search: single-pair shortest paths over a
// core.HeuristicGraph, generic over the vertex type and the frontier queue.
//
// The frontier priority of a vertex v is distTo[v] + h(v, goal), where h is
// the graph's EstimatedDistance. With a zero heuristic A* settles vertices in
// exactly the order Dijkstra does.
//
// Heuristic requirements:
//
//   - Admissible: h(v, goal) never exceeds the true distance from v to goal.
//   - Consistent: for every edge v→w, h(v, goal) <= weight + h(w, goal).
//
// Admissibility is enough for the goal's distance to be final the first time
// it leaves the frontier, which is what WithEarlyExit relies on. Vertices
// whose distance improves after they were settled are queued again, so an
// inconsistent heuristic costs extra settles but never a wrong answer.
// Consistency guarantees every vertex is settled at most once.
//
// By default the search drains the frontier, so every vertex reachable from
// the start ends up with its exact distance, as in the reference behavior.
//
// Complexity (OptimizedHeapMinPQ): O((V + E) log V) in the worst case; a
// good heuristic combined with WithEarlyExit typically settles a small
// fraction of V.
//
// Errors: core.ErrNilGraph, ErrNegativeWeight, ErrBadHeuristic, ErrNeighbors,
// minpq.ErrUnknownKind; core.ErrNoPath from Solution.
package astar
