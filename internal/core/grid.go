package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a grid is constructed with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned by Get and Set for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	Occupied
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Grid stores a fixed-size 2D array of cells in row-major order. Rows grow
// downwards. Every access is bounds-checked and reports ErrOutOfBounds.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a grid of width columns by height rows, all Empty.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{w: width, h: height, cells: make([]Cell, width*height)}, nil
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (int, int) { return g.w, g.h }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Empty, g.outOfBounds(row, col)
	}
	return g.cells[row*g.w+col], nil
}

// Set writes state to the cell at (row, col).
func (g *Grid) Set(row, col int, state Cell) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	g.cells[row*g.w+col] = state
	return nil
}

// Occupied counts the cells holding material.
func (g *Grid) Occupied() int {
	n := 0
	for _, c := range g.cells {
		if c == Occupied {
			n++
		}
	}
	return n
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.w, g.h)
}

// View is a read-only handle on a Grid. The owner of the grid may keep
// mutating it; a View always reflects the current state.
type View struct {
	g *Grid
}

// ViewOf wraps g in a read-only View.
func ViewOf(g *Grid) View { return View{g: g} }

// Dimensions returns the viewed grid's width and height.
func (v View) Dimensions() (int, int) {
	if v.g == nil {
		return 0, 0
	}
	return v.g.Dimensions()
}

// At returns the cell at (row, col) under the same bounds contract as Grid.Get.
func (v View) At(row, col int) (Cell, error) {
	if v.g == nil {
		return Empty, fmt.Errorf("%w: (%d,%d) on empty view", ErrOutOfBounds, row, col)
	}
	return v.g.Get(row, col)
}

// Occupied counts the cells holding material.
func (v View) Occupied() int {
	if v.g == nil {
		return 0
	}
	return v.g.Occupied()
}

// Rows returns a deep copy of the cell states indexed [row][col].
func (v View) Rows() [][]Cell {
	w, h := v.Dimensions()
	rows := make([][]Cell, h)
	for r := range rows {
		rows[r] = append([]Cell(nil), v.g.cells[r*w:(r+1)*w]...)
	}
	return rows
}

// Equal reports whether both views have the same dimensions and cell states.
func (v View) Equal(o View) bool {
	vw, vh := v.Dimensions()
	ow, oh := o.Dimensions()
	if vw != ow || vh != oh {
		return false
	}
	if v.g == nil || o.g == nil {
		return v.g == o.g
	}
	for i, c := range v.g.cells {
		if o.g.cells[i] != c {
			return false
		}
	}
	return true
}
