package seam

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// SeamFinder finds a minimum-energy horizontal seam: one y per column, with
// consecutive entries differing by at most one.
type SeamFinder interface {
	FindHorizontal(e Energy) ([]int, error)
}

// Finder reduces seam finding to a shortest path from Source to Sink in a
// PixelGraph, computed by any single-source solver.
type Finder struct {
	// Solve builds a solver for a graph and start vertex, e.g.
	// dijkstra.Constructor[seam.Node]() or dag.Constructor[seam.Node]().
	Solve core.Constructor[Node]

	// Materialize runs the solver on an adjacency-list copy of the graph
	// instead of the generative PixelGraph.
	Materialize bool
}

// NewFinder returns a Finder over the generative pixel graph.
func NewFinder(solve core.Constructor[Node]) *Finder {
	return &Finder{Solve: solve}
}

// FindHorizontal returns, for each column x, the row y of the seam.
// Returns ErrEmptyGrid, ErrNoSolver, the solver's own error, or
// ErrBrokenSeam if the solver produced something other than a seam.
func (f *Finder) FindHorizontal(e Energy) ([]int, error) {
	if f == nil || f.Solve == nil {
		return nil, ErrNoSolver
	}
	pg, err := NewPixelGraph(e)
	if err != nil {
		return nil, err
	}

	var g core.Graph[Node] = pg
	if f.Materialize {
		if g, err = pg.Materialize(); err != nil {
			return nil, err
		}
	}
	s, err := f.Solve(g, Source)
	if err != nil {
		return nil, err
	}
	path, err := s.Solution(Sink)
	if err != nil {
		return nil, err
	}

	// strip Source and Sink
	if len(path) != e.Width()+2 {
		return nil, fmt.Errorf("%w: %d vertices for width %d", ErrBrokenSeam, len(path), e.Width())
	}
	seam := make([]int, 0, e.Width())
	for _, n := range path[1 : len(path)-1] {
		seam = append(seam, n.Y)
	}

	return seam, nil
}

// FindVertical returns, for each row y, the column x of the seam, by
// searching the transposed field.
func (f *Finder) FindVertical(e Energy) ([]int, error) {
	if err := checkEnergy(e); err != nil {
		return nil, err
	}

	return f.FindHorizontal(Transpose(e))
}

// FindVertical adapts any SeamFinder to vertical seams.
func FindVertical(sf SeamFinder, e Energy) ([]int, error) {
	if err := checkEnergy(e); err != nil {
		return nil, err
	}

	return sf.FindHorizontal(Transpose(e))
}

// Cost returns the total energy of a horizontal seam and whether it is a
// valid seam for e (right length, in bounds, steps of at most one row).
func Cost(e Energy, seam []int) (float64, bool) {
	if checkEnergy(e) != nil || len(seam) != e.Width() {
		return 0, false
	}
	total := 0.0
	for x, y := range seam {
		if !InBounds(e, x, y) {
			return 0, false
		}
		if x > 0 {
			if d := y - seam[x-1]; d < -1 || d > 1 {
				return 0, false
			}
		}
		total += e.At(x, y)
	}

	return total, true
}
