// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_layered.go - implementation of Layered(layers, width, fan) constructor.
//
// Canonical model:
//   • layers × width vertices, ID = offset + l*width + i.
//   • Vertex (l, i) links to (l+1, (i+d) % width) for d = 0..fan-1.
//     Every edge goes one layer down, so the result is a DAG.
//
// Contract:
//   • layers ≥ 2, width ≥ 1, 1 ≤ fan ≤ width (else ErrTooFewVertices).
//
// Complexity: O(layers*width*fan) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodLayered = "Layered"
	minLayers     = 2
)

// Layered returns a Constructor that builds a layered DAG.
func Layered(layers, width, fan int) Constructor {
	return func(g *core.Digraph[int], cfg builderConfig) error {
		if layers < minLayers || width < 1 || fan < 1 || fan > width {
			return fmt.Errorf("%s: layers=%d, width=%d, fan=%d: %w",
				methodLayered, layers, width, fan, ErrTooFewVertices)
		}
		for v := 0; v < layers*width; v++ {
			g.AddVertex(cfg.id(v))
		}
		for l := 0; l < layers-1; l++ {
			for i := 0; i < width; i++ {
				u := cfg.id(l*width + i)
				for d := 0; d < fan; d++ {
					v := cfg.id((l+1)*width + (i+d)%width)
					if err := cfg.addEdge(g, methodLayered, u, v); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
