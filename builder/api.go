// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Vertices are dense integer IDs starting at cfg.offset.
type Constructor func(g *core.Digraph[int], cfg builderConfig) error

// BuildGraph creates a new core.Digraph[int] with graph options gopts,
// resolves the builder configuration from bopts, and applies all
// constructors in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.DigraphOption[int], bopts []BuilderOption, cons ...Constructor) (*core.Digraph[int], error) {
	g := core.NewDigraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph with default graph options, the common case in tests
// and benchmarks.
func Build(bopts []BuilderOption, cons ...Constructor) (*core.Digraph[int], error) {
	return BuildGraph(nil, bopts, cons...)
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Path(n)                      0 → 1 → … → n-1                      (DAG)
// Cycle(n)                     0 → 1 → … → n-1 → 0                  (one cycle)
// Grid(rows, cols)             r*cols+c → right and down neighbors  (DAG)
// Layered(layers, width, fan)  every vertex → fan vertices of the next layer (DAG)
// RandomDAG(n, p)              i → j with probability p for i < j  (DAG)
// RandomSparse(n, p)           i → j with probability p for i != j (cycles likely)
