package seam

// Grid is an immutable Energy backed by a row-major [][]float64.
type Grid struct {
	width, height int
	cells         [][]float64 // cells[y][x]
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// as values[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid or ErrNonRectangular.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the energy of pixel (x, y).
func (g *Grid) At(x, y int) float64 { return g.cells[y][x] }

// InBounds reports whether (x,y) lies within the grid boundaries.
func InBounds(e Energy, x, y int) bool {
	return x >= 0 && x < e.Width() && y >= 0 && y < e.Height()
}

// transposed swaps the axes of an Energy without copying.
type transposed struct{ e Energy }

func (t transposed) Width() int          { return t.e.Height() }
func (t transposed) Height() int         { return t.e.Width() }
func (t transposed) At(x, y int) float64 { return t.e.At(y, x) }

// Transpose returns a view of e with x and y swapped. Transposing twice
// returns the original Energy.
func Transpose(e Energy) Energy {
	if t, ok := e.(transposed); ok {
		return t.e
	}

	return transposed{e: e}
}

// checkEnergy rejects nil and degenerate fields.
func checkEnergy(e Energy) error {
	if e == nil || e.Width() <= 0 || e.Height() <= 0 {
		return ErrEmptyGrid
	}

	return nil
}
