package world

import (
	"errors"
	"math"
)

// Allocation failure classes for NewGrid and Resize.
var (
	// ErrBadDimensions indicates a requested dimension was zero or negative.
	ErrBadDimensions = errors.New("world: grid dimensions must be positive")
	// ErrDimensionOverflow indicates rows*cols would exceed the 32-bit signed
	// bound. The margin exists so a later Resize cannot overflow either.
	ErrDimensionOverflow = errors.New("world: grid dimensions overflow 32-bit bound")
	// ErrEmptyGrid indicates an operation was invoked on a released grid.
	ErrEmptyGrid = errors.New("world: grid is empty")
)

// Grid is the 2D tile field. Cells are stored row-major in a single
// contiguous buffer. A Grid is exclusively owned by the session driving it;
// none of its methods are safe for concurrent use.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

// NewGrid allocates a rows×cols grid with every cell set to TileOpen.
//
// Postcondition: Returns a non-empty all-open grid, or ErrBadDimensions /
// ErrDimensionOverflow.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}
	if rows > math.MaxInt32/cols || cols > math.MaxInt32/rows {
		return nil, ErrDimensionOverflow
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// IsEmpty reports whether the grid has been released or never allocated.
func (g *Grid) IsEmpty() bool {
	return g.cells == nil
}

// InBounds reports whether a row/col position lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile at the given position.
//
// Postcondition: Returns (tile, true) in bounds, or (TileOpen, false) otherwise.
func (g *Grid) At(row, col int) (Tile, bool) {
	if g.IsEmpty() || !g.InBounds(row, col) {
		return TileOpen, false
	}
	return g.cells[row*g.cols+col], true
}

// Set writes the tile at the given position. Returns false out of bounds.
func (g *Grid) Set(row, col int, t Tile) bool {
	if g.IsEmpty() || !g.InBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = t
	return true
}

// Release drops the grid's storage and zeroes its dimensions. Idempotent.
//
// Postcondition: IsEmpty() returns true.
func (g *Grid) Release() {
	g.cells = nil
	g.rows = 0
	g.cols = 0
}

// Resize doubles both grid dimensions, laying out four copies of the
// original as a 2×2 block. Every copy of the player tile outside the
// original top-left quadrant is written as TileOpen so exactly one player
// tile survives, at its original coordinates.
//
// The receiver is always released, whether Resize succeeds or fails.
//
// Postcondition: Returns the doubled grid, or ErrEmptyGrid /
// ErrDimensionOverflow with the receiver released.
func (g *Grid) Resize() (*Grid, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGrid
	}
	defer g.Release()

	rows, cols := g.rows*2, g.cols*2
	bigger, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			t := g.cells[row*g.cols+col]
			bigger.Set(row, col, t)
			if t == TilePlayer {
				t = TileOpen
			}
			bigger.Set(row, col+g.cols, t)
			bigger.Set(row+g.rows, col, t)
			bigger.Set(row+g.rows, col+g.cols, t)
		}
	}

	return bigger, nil
}

// ForEach calls fn for every cell in row-major order.
func (g *Grid) ForEach(fn func(row, col int, t Tile)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}
