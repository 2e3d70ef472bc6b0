package app

import (
	"flag"
	"testing"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAt(t *testing.T) {
	size := core.Size{W: 160, H: 120}

	row, col, ok := CellAt(0, 0, 5, size)
	assert.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = CellAt(799, 599, 5, size)
	assert.True(t, ok)
	assert.Equal(t, 119, row)
	assert.Equal(t, 159, col)

	row, col, ok = CellAt(13, 27, 5, size)
	assert.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 2, col)

	for _, p := range [][2]int{{800, 10}, {10, 600}, {-1, 0}, {0, -1}} {
		_, _, ok := CellAt(p[0], p[1], 5, size)
		assert.False(t, ok, "point %v", p)
	}
	_, _, ok = CellAt(1, 1, 0, size)
	assert.False(t, ok)
}

func TestPourDepositsUnderCursor(t *testing.T) {
	e, err := sand.New(10, 8)
	require.NoError(t, err)

	assert.True(t, Pour(e, 12, 7, 4))
	cell, err := e.Snapshot().At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Occupied, cell)

	assert.False(t, Pour(e, 400, 7, 4))
	assert.Equal(t, 1, e.Grains())
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "30", "-tps", "25", "-dunes"}))

	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 25, cfg.TPS)
	assert.True(t, cfg.Dunes)

	sc := sand.FromMap(cfg.SimConfig())
	assert.Equal(t, 30, sc.Width)
	assert.Equal(t, 120, sc.Height)
	assert.True(t, sc.Dunes)
}
