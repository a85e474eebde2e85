// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) and
// RandomDAG(n, p) constructors.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - RandomSparse: ordered pairs (i,j), i != j. Cycles are likely.
//   - RandomDAG:    ordered pairs (i,j), i < j. Topological order is 0..n-1.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Weights are drawn right after a
//     successful trial, so a fixed seed fixes both topology and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomDAG         = "RandomDAG"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return randomEdges(methodRandomSparse, n, p, func(i, j int) bool { return i != j })
}

// RandomDAG returns a Constructor that samples a DAG over n vertices: each
// forward pair i < j becomes an edge i → j with probability p.
func RandomDAG(n int, p float64) Constructor {
	return randomEdges(methodRandomDAG, n, p, func(i, j int) bool { return i < j })
}

// randomEdges runs one Bernoulli trial per admissible ordered pair.
func randomEdges(method string, n int, p float64, admissible func(i, j int) bool) Constructor {
	return func(g *core.Digraph[int], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				method, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				method, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.id(i))
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !admissible(i, j) {
					continue
				}
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := cfg.addEdge(g, method, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
