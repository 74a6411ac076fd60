package rain

import "fmt"

// Grid is a fixed-size, row-major array of cells. Its dimensions never
// change after construction.
type Grid struct {
	width, height int
	cells         []Rune
}

// NewGrid returns a width x height grid with every cell set to blank.
func NewGrid(width, height int, blank Rune) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridSize, width, height)
	}
	cells := make([]Rune, width*height)
	for i := range cells {
		cells[i] = blank
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Contains reports whether (x, y) is inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set overwrites the cell at (x, y). It panics with a *BoundsError when the
// coordinate is outside the grid.
func (g *Grid) Set(x, y int, r Rune) {
	g.cells[g.index(x, y)] = r
}

// At returns the cell at (x, y) for in-place update. It panics with a
// *BoundsError when the coordinate is outside the grid.
func (g *Grid) At(x, y int) *Rune {
	return &g.cells[g.index(x, y)]
}

func (g *Grid) index(x, y int) int {
	if !g.Contains(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: g.width, Height: g.height})
	}
	return y*g.width + x
}
