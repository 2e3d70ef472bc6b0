// Package sand implements a falling-sand cellular automaton: grains
// deposited on a grid fall straight down when they can and otherwise slide
// diagonally onto a free cell below.
package sand

import (
	"falling-sand/internal/core"
)

// Engine owns a grid of sand and advances it one tick at a time.
//
// A tick is a single in-place pass. Rows are visited from the second-to-last
// up to the first, columns from the last down to column 1. Moves made earlier
// in the pass are visible to later checks. The bottom row and column 0 never
// act as move sources; column 0 can still receive grains from column 1.
type Engine struct {
	cfg  Config
	grid *core.Grid
	src  core.Coin

	display []uint8
	tick    uint64
	moves   int
}

type reseeder interface {
	Reseed(seed int64)
}

// New returns an empty engine with the provided dimensions using defaults.
func New(width, height int) (*Engine, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine whose diagonal tie-breaks are drawn from an
// RNG seeded with cfg.Seed.
func NewWithConfig(cfg Config) (*Engine, error) {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource returns an engine that draws diagonal tie-breaks from src.
// The grid starts empty; call Reset to apply configured terrain.
func NewWithSource(cfg Config, src core.Coin) (*Engine, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	return &Engine{
		cfg:     cfg,
		grid:    grid,
		src:     src,
		display: make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "sand" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size {
	w, h := e.grid.Dimensions()
	return core.Size{W: w, H: h}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cells exposes the display buffer: 0 for empty cells, 1 for sand. The buffer
// is rebuilt from the grid after every mutation, so writes to it are lost.
func (e *Engine) Cells() []uint8 { return e.display }

// Snapshot returns a read-only view of the grid.
func (e *Engine) Snapshot() core.View { return core.ViewOf(e.grid) }

// Tick returns the number of steps applied since the last reset.
func (e *Engine) Tick() uint64 { return e.tick }

// LastMoves returns how many grains moved during the most recent step.
func (e *Engine) LastMoves() int { return e.moves }

// Settled reports whether the most recent step moved nothing.
func (e *Engine) Settled() bool { return e.tick > 0 && e.moves == 0 }

// Grains counts occupied cells.
func (e *Engine) Grains() int { return e.grid.Occupied() }

// Deposit places a grain at (row, col) if the cell is empty. Occupied and
// out-of-range targets are ignored.
func (e *Engine) Deposit(row, col int) {
	cell, err := e.grid.Get(row, col)
	if err != nil || cell != core.Empty {
		return
	}
	_ = e.grid.Set(row, col, core.Occupied)
	w, _ := e.grid.Dimensions()
	e.display[row*w+col] = displaySand
}

// Clear empties the grid without touching the tick counter or random source.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.rebuildDisplay()
}

// Reset empties the grid, restarts the tick counter and reseeds the random
// source when it supports reseeding. A zero seed selects the configured one.
// Configured dunes are laid down afterwards.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	if r, ok := e.src.(reseeder); ok {
		r.Reseed(effective)
	}
	e.grid.Clear()
	if e.cfg.Dunes {
		e.seedDunes(effective)
	}
	e.tick = 0
	e.moves = 0
	e.rebuildDisplay()
}

// Step applies one update pass to the whole grid.
func (e *Engine) Step() {
	w, h := e.grid.Dimensions()
	moves := 0
	for row := h - 2; row >= 0; row-- {
		below := row + 1
		for col := w - 1; col > 0; col-- {
			if cell, _ := e.grid.Get(row, col); cell != core.Occupied {
				continue
			}
			left, right := col-1, col+1
			switch {
			case e.empty(below, col):
				e.move(row, col, below, col)
			case e.empty(below, left) && e.empty(below, right):
				if e.src.Bool() {
					e.move(row, col, below, left)
				} else {
					e.move(row, col, below, right)
				}
			case e.empty(below, left):
				e.move(row, col, below, left)
			case e.empty(below, right):
				e.move(row, col, below, right)
			default:
				continue
			}
			moves++
		}
	}
	e.tick++
	e.moves = moves
	e.rebuildDisplay()
}

// empty treats coordinates outside the grid as blocked.
func (e *Engine) empty(row, col int) bool {
	cell, err := e.grid.Get(row, col)
	return err == nil && cell == core.Empty
}

func (e *Engine) move(fromRow, fromCol, toRow, toCol int) {
	_ = e.grid.Set(fromRow, fromCol, core.Empty)
	_ = e.grid.Set(toRow, toCol, core.Occupied)
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		e, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		e.Reset(0)
		return e, nil
	})
}
