// Package term runs a simulation in a terminal. Each character cell shows two
// grid rows using an upper half block, so a 160x120 grid fits in 160x60
// characters plus a status line.
package term

import (
	"context"
	"fmt"
	"time"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	"falling-sand/internal/render"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = time.Second / 60
	halfBlock     = '▀'
)

// Frontend draws a sim onto a tcell screen and feeds it mouse deposits.
type Frontend struct {
	screen  tcell.Screen
	sim     core.Sim
	clock   *core.FixedStep
	palette []tcell.Color
	seed    int64

	paused   bool
	tickOnce bool
	pouring  bool
	mouseX   int
	mouseY   int
}

// New prepares a frontend. The caller owns screen and must have initialised it.
func New(screen tcell.Screen, sim core.Sim, cfg *app.Config) *Frontend {
	pal := render.PaletteFor(sim)
	colors := make([]tcell.Color, len(pal))
	for i, c := range pal {
		colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	screen.EnableMouse()
	return &Frontend{
		screen:  screen,
		sim:     sim,
		clock:   core.NewFixedStep(cfg.TPS),
		palette: colors,
		seed:    cfg.Seed,
	}
}

// Run processes input and advances the sim until the user quits or ctx is
// cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Frame()
			f.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventMouse:
		f.mouseX, f.mouseY = ev.Position()
		f.pouring = ev.Buttons()&tcell.Button1 != 0
		if f.pouring {
			f.pour()
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return f.handleRune(ev.Rune())
		}
	}
	return false
}

func (f *Frontend) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		f.paused = !f.paused
	case 'n':
		f.tickOnce = true
	case 'r':
		f.reset(f.seed)
	case 's':
		f.reset(time.Now().UnixNano())
	case 'c':
		if c, ok := f.sim.(app.Clearer); ok {
			c.Clear()
		}
	}
	return false
}

func (f *Frontend) reset(seed int64) {
	f.seed = seed
	f.sim.Reset(seed)
	f.tickOnce = false
	f.clock.Reset()
}

// pour deposits into the upper grid row of the character under the mouse.
func (f *Frontend) pour() {
	d, ok := f.sim.(app.Depositor)
	if !ok {
		return
	}
	d.Deposit(f.mouseY*2, f.mouseX)
}

// Frame runs one frame of input-independent work: continued pouring while the
// button is held, then whatever simulation ticks are due.
func (f *Frontend) Frame() {
	if f.pouring {
		f.pour()
	}
	due := f.clock.Due()
	if f.paused {
		due = 0
	}
	if f.tickOnce {
		due = 1
		f.tickOnce = false
	}
	for i := 0; i < due; i++ {
		f.sim.Step()
	}
}

// Draw renders the grid and the status line.
func (f *Frontend) Draw() {
	sw, sh := f.screen.Size()
	size := f.sim.Size()
	cells := f.sim.Cells()
	blank := tcell.StyleDefault
	for y := 0; y < sh-1; y++ {
		top, bottom := 2*y, 2*y+1
		for x := 0; x < sw; x++ {
			if x >= size.W || top >= size.H {
				f.screen.SetContent(x, y, ' ', nil, blank)
				continue
			}
			style := blank.Foreground(f.color(cells[top*size.W+x]))
			if bottom < size.H {
				style = style.Background(f.color(cells[bottom*size.W+x]))
			}
			f.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	if sh > 0 {
		f.drawStatus(sh-1, sw)
	}
	f.screen.Show()
}

func (f *Frontend) color(v uint8) tcell.Color {
	if len(f.palette) == 0 {
		return tcell.ColorDefault
	}
	if int(v) >= len(f.palette) {
		return f.palette[len(f.palette)-1]
	}
	return f.palette[v]
}

func (f *Frontend) drawStatus(y, width int) {
	line := f.Status()
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		f.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Status summarises the sim for the bottom line.
func (f *Frontend) Status() string {
	line := f.sim.Name()
	if p, ok := f.sim.(core.ParameterProvider); ok {
		snap := p.Parameters()
		tick, _ := snap.Lookup("tick")
		grains, _ := snap.Lookup("grains")
		line = fmt.Sprintf("%s  tick %s  grains %s", line, tick.Value, grains.Value)
	}
	if f.paused {
		line += "  [paused]"
	}
	return line + "  (drag to pour, space pause, n step, r reset, c clear, q quit)"
}
