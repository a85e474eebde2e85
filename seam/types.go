// File: types.go
// Role: energy field contract, pixel-graph vertices and sentinel errors.

package seam

import (
	"errors"
	"fmt"
)

// Sentinel errors for seam operations.
var (
	// ErrEmptyGrid indicates an energy grid with no rows or no columns.
	ErrEmptyGrid = errors.New("seam: energy grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("seam: all rows must have the same length")
	// ErrNoSolver indicates a Finder without a solver constructor.
	ErrNoSolver = errors.New("seam: finder has no solver")
	// ErrBrokenSeam indicates a solver returned a path that is not a seam.
	ErrBrokenSeam = errors.New("seam: solver returned an invalid seam")
)

// Energy is a rectangular field of per-pixel costs. At must be defined for
// 0 <= x < Width() and 0 <= y < Height().
type Energy interface {
	Width() int
	Height() int
	At(x, y int) float64
}

// NodeKind distinguishes the virtual endpoints from real pixels.
type NodeKind uint8

const (
	// KindPixel marks a real pixel at (X, Y).
	KindPixel NodeKind = iota
	// KindSource marks the virtual vertex left of column 0.
	KindSource
	// KindSink marks the virtual vertex right of the last column.
	KindSink
)

// Node is a vertex of a PixelGraph. Only pixels carry coordinates.
type Node struct {
	Kind NodeKind
	X, Y int
}

// Source and Sink are the virtual endpoints of every horizontal seam.
var (
	Source = Node{Kind: KindSource}
	Sink   = Node{Kind: KindSink}
)

// Pixel returns the node for pixel (x, y).
func Pixel(x, y int) Node { return Node{Kind: KindPixel, X: x, Y: y} }

// String renders pixels as "(x, y)" and the endpoints by name.
func (n Node) String() string {
	switch n.Kind {
	case KindSource:
		return "source"
	case KindSink:
		return "sink"
	default:
		return fmt.Sprintf("(%d, %d)", n.X, n.Y)
	}
}
