package app

import "falling-sand/internal/core"

// Depositor accepts material placed by the user.
type Depositor interface {
	Deposit(row, col int)
}

// Clearer empties a simulation without resetting it.
type Clearer interface {
	Clear()
}

// CellAt maps a screen position to the (row, col) of the cell drawn there.
// ok is false for positions outside the drawn grid.
func CellAt(x, y, scale int, size core.Size) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Pour deposits into the cell under (x, y) when sim accepts deposits.
func Pour(sim core.Sim, x, y, scale int) bool {
	d, ok := sim.(Depositor)
	if !ok {
		return false
	}
	row, col, ok := CellAt(x, y, scale, sim.Size())
	if !ok {
		return false
	}
	d.Deposit(row, col)
	return true
}
