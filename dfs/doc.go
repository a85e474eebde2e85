// Package dfs implements depth-first traversal, post-order collection,
// topological sort and cycle discovery on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, recording post-order, tree depth and parent links.
//   - PostOrder: DFS from each root in turn, returning finishing order.
//   - TopologicalSort: reverse post-order of the vertices reachable from a
//     set of roots; fails with *CycleError if a cycle is reachable.
//   - FindCycle: reports one reachable cycle, or nil.
//
// All traversals are iterative with an explicit stack and use three-color
// marking (White, Gray, Black). A Gray→Gray edge is a back edge, i.e. a cycle.
//
// Why:
//   - The DAG shortest-path solver relaxes vertices in topological order.
//   - Detect cycles before relying on an order that does not exist.
//
// Complexity:
//
//   - DFS, PostOrder, TopologicalSort, FindCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrCycleDetected  cycle discovered (as *CycleError[V] carrying the cycle)
//   - ErrNeighborFetch  Neighbors failed (the graph error is wrapped too)
//   - context.Canceled  traversal cancelled via WithContext
//
// Options:
//
//   - WithContext(ctx)   cancellation
//   - WithAllowCycles()  ignore back edges instead of failing
package dfs
