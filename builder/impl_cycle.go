// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices). Two vertices give the 2-cycle 0 ⇄ 1.
//   • Emits edges i → (i+1)%n for i=0..n-1.
//
// Used to exercise cycle detection: the result is never a DAG.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Digraph[int], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.id(i))
		}
		for i := 0; i < n; i++ {
			if err := cfg.addEdge(g, methodCycle, cfg.id(i), cfg.id((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
