package seam

import "math"

// DynamicProgramming returns a minimum-energy horizontal seam of e using the
// classic column-by-column recurrence:
//
//	cost[0][y] = e(0, y)
//	cost[x][y] = e(x, y) + min(cost[x-1][y-1..y+1])
//
// Ties during backtracking resolve to the larger row. The result has the
// same total energy as any shortest Source→Sink path in the PixelGraph.
// Returns nil for a nil or empty field.
// Complexity: O(W×H) time and memory.
func DynamicProgramming(e Energy) []int {
	if checkEnergy(e) != nil {
		return nil
	}
	w, h := e.Width(), e.Height()

	cost := make([][]float64, w)
	cost[0] = make([]float64, h)
	for y := 0; y < h; y++ {
		cost[0][y] = e.At(0, y)
	}
	for x := 1; x < w; x++ {
		cost[x] = make([]float64, h)
		for y := 0; y < h; y++ {
			best := math.Inf(1)
			for z := y - 1; z <= y+1; z++ {
				if z >= 0 && z < h && cost[x-1][z] < best {
					best = cost[x-1][z]
				}
			}
			cost[x][y] = best + e.At(x, y)
		}
	}

	seam := make([]int, w)
	seam[w-1] = argMin(cost[w-1], 0, h-1)
	for x := w - 2; x >= 0; x-- {
		next := seam[x+1]
		seam[x] = argMin(cost[x], max(next-1, 0), min(next+1, h-1))
	}

	return seam
}

// argMin returns the last index in col[lo..hi] holding the minimum.
func argMin(col []float64, lo, hi int) int {
	best, at := math.Inf(1), lo
	for z := lo; z <= hi; z++ {
		if col[z] <= best {
			best, at = col[z], z
		}
	}

	return at
}

// DP is the SeamFinder form of DynamicProgramming.
type DP struct{}

// FindHorizontal implements SeamFinder. Returns ErrEmptyGrid for a nil or
// empty field.
func (DP) FindHorizontal(e Energy) ([]int, error) {
	if err := checkEnergy(e); err != nil {
		return nil, err
	}

	return DynamicProgramming(e), nil
}
