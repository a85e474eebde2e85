// Package seam finds minimum-energy seams through a 2D energy field by
// reducing the search to a single-source shortest path.
//
// What:
//
//   - Energy is any rectangular field of per-pixel costs; Grid is the
//     slice-backed implementation and Transpose swaps its axes.
//   - PixelGraph is a generative core.Graph: a virtual Source feeds every
//     pixel of column 0, each pixel feeds its up to three right-hand
//     neighbors, and the last column drains into a virtual Sink. Edge weight
//     is the energy of the pixel entered, so the Source→Sink distance is the
//     seam's total energy.
//   - Finder runs any core.Constructor over that graph (Dijkstra with any
//     queue, or the DAG solver when energies may be negative) and strips the
//     virtual endpoints from the path.
//   - DynamicProgramming is the O(W×H) column recurrence, kept as a
//     reference finder.
//
// Complexity:
//
//   - Finder with Dijkstra: O(W×H log(W×H)); with the DAG solver: O(W×H).
//   - DynamicProgramming:   O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      nil field, or no rows or columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoSolver:       Finder without a constructor.
//   - ErrBrokenSeam:     the solver's path does not visit one pixel per column.
//
// Solver errors (for example dijkstra.ErrNegativeWeight) are returned as is.
package seam
