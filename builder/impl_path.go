// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices 0..n-1 (shifted by cfg.offset) in ascending order.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *core.Digraph[int], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.id(i))
		}
		for i := 1; i < n; i++ {
			if err := cfg.addEdge(g, methodPath, cfg.id(i-1), cfg.id(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
