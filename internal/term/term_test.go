package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFrontend(t *testing.T, w, h int) (*Frontend, *sand.Engine, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h/2+1)

	e, err := sand.New(w, h)
	require.NoError(t, err)
	return New(screen, e, app.NewConfig()), e, screen
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := screen.GetContents()
	return cells[y*w+x]
}

func TestMouseDragPoursIntoUpperHalf(t *testing.T) {
	f, e, _ := newTestFrontend(t, 8, 6)

	quit := f.HandleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	assert.False(t, quit)

	cell, err := e.Snapshot().At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, core.Occupied, cell)

	f.Frame()
	assert.Equal(t, 1, e.Grains(), "held button on an occupied cell adds nothing")

	f.HandleEvent(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone))
	e.Step()
	f.Frame()
	assert.Equal(t, 1, e.Grains(), "released button stops pouring")
}

func TestDrawUsesHalfBlocksAndPalette(t *testing.T) {
	f, e, screen := newTestFrontend(t, 4, 4)
	e.Deposit(0, 1)
	e.Deposit(3, 2)

	f.Draw()

	sandColor := tcell.NewRGBColor(243, 238, 73)
	emptyColor := tcell.NewRGBColor(25, 25, 25)

	top := cellAt(t, screen, 1, 0)
	require.NotEmpty(t, top.Runes)
	assert.Equal(t, halfBlock, top.Runes[0])
	fg, bg, _ := top.Style.Decompose()
	assert.Equal(t, sandColor, fg)
	assert.Equal(t, emptyColor, bg)

	bottom := cellAt(t, screen, 2, 1)
	fg, bg, _ = bottom.Style.Decompose()
	assert.Equal(t, emptyColor, fg)
	assert.Equal(t, sandColor, bg)

	var status strings.Builder
	cells, w, _ := screen.GetContents()
	for x := 0; x < w; x++ {
		status.WriteString(string(cells[2*w+x].Runes))
	}
	assert.True(t, strings.HasPrefix(status.String(), "sand"), "status line: %q", status.String())
}

func TestKeysControlTheSim(t *testing.T) {
	f, e, _ := newTestFrontend(t, 6, 6)
	e.Deposit(0, 3)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, f.paused)
	assert.Contains(t, f.Status(), "[paused]")

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	f.Frame()
	assert.Equal(t, uint64(1), e.Tick(), "single step runs while paused")
	f.Frame()
	assert.Equal(t, uint64(1), e.Tick())

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	assert.Zero(t, e.Grains())

	e.Deposit(0, 3)
	e.Step()
	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Zero(t, e.Grains())
	assert.Zero(t, e.Tick())

	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, _ := newTestFrontend(t, 4, 4)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
