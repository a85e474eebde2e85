// Package builder provides deterministic generators of core.Digraph[int]
// topologies, used as fixtures by the solver tests, benchmarks and the
// cross-solver agreement checks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph / Build: create a graph and apply Constructors in order.
//     – Constructor:        a closure that mutates a graph under a builderConfig.
//   - Topologies:
//     – Path, Grid, Layered, RandomDAG: acyclic fixtures.
//     – Cycle, RandomSparse:            fixtures that may contain cycles.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value (may be negative).
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – IntWeightFn:         integers in [min,max], exact under addition.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Options: WithSeed, WithRand, WithWeightFn (+ WithXxxWeight shorthands),
//     WithOffset.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed produce identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
package builder
