// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols cells, vertex ID = offset + r*cols + c (row-major).
//   • Each cell links to its Right (r,c+1) and Down (r+1,c) neighbor, so the
//     grid is a DAG whose only source is cell (0,0).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Stable edge order: for each cell emit Right then Down.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols right/down grid DAG.
func Grid(rows, cols int) Constructor {
	return func(g *core.Digraph[int], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) int { return cfg.id(r*cols + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(cell(r, c))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := cfg.addEdge(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addEdge(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridCell returns the vertex ID of cell (r, c) in a grid with cols columns
// built without an offset.
func GridCell(r, c, cols int) int { return r*cols + c }
