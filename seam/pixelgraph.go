package seam

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// PixelGraph is the generative graph of horizontal seams over an Energy:
//
//   - Source → (0, y) for every row, weighted by the target's energy.
//   - (x, y) → (x+1, y-1), (x+1, y), (x+1, y+1) when in bounds, weighted by
//     the target's energy.
//   - (W-1, y) → Sink with weight 0.
//
// Edges are produced on demand; nothing is materialized. The graph is a DAG.
type PixelGraph struct {
	e Energy
}

// NewPixelGraph wraps e. Returns ErrEmptyGrid for a nil or empty field.
func NewPixelGraph(e Energy) (*PixelGraph, error) {
	if err := checkEnergy(e); err != nil {
		return nil, err
	}

	return &PixelGraph{e: e}, nil
}

// Neighbors implements core.Graph. Pixels outside the field report
// core.ErrVertexNotFound.
func (g *PixelGraph) Neighbors(n Node) ([]core.Edge[Node], error) {
	w, h := g.e.Width(), g.e.Height()
	switch n.Kind {
	case KindSource:
		out := make([]core.Edge[Node], 0, h)
		for y := 0; y < h; y++ {
			out = append(out, core.Edge[Node]{From: n, To: Pixel(0, y), Weight: g.e.At(0, y)})
		}
		return out, nil
	case KindSink:
		return nil, nil
	}

	if !InBounds(g.e, n.X, n.Y) {
		return nil, core.ErrVertexNotFound
	}
	if n.X == w-1 {
		return []core.Edge[Node]{{From: n, To: Sink, Weight: 0}}, nil
	}
	out := make([]core.Edge[Node], 0, 3)
	for z := n.Y - 1; z <= n.Y+1; z++ {
		if z >= 0 && z < h {
			out = append(out, core.Edge[Node]{From: n, To: Pixel(n.X+1, z), Weight: g.e.At(n.X+1, z)})
		}
	}

	return out, nil
}

// Materialize copies the whole pixel graph into an adjacency list. Both
// forms yield the same seams; the materialized one trades W×H×3 edges of
// memory for cheaper neighbor lookups. An Energy that changes shape while
// being copied is reported as an error.
func (g *PixelGraph) Materialize() (*core.Digraph[Node], error) {
	d := core.NewDigraph[Node]()
	w, h := g.e.Width(), g.e.Height()

	nodes := make([]Node, 0, w*h+2)
	nodes = append(nodes, Source)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			nodes = append(nodes, Pixel(x, y))
		}
	}
	nodes = append(nodes, Sink)

	for _, n := range nodes {
		d.AddVertex(n)
		edges, err := g.Neighbors(n)
		if err != nil {
			return nil, fmt.Errorf("seam: materialize %v: %w", n, err)
		}
		for _, e := range edges {
			if err = d.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("seam: materialize %v: %w", e, err)
			}
		}
	}

	return d, nil
}
