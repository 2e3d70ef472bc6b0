package sand

import (
	"image/color"

	"falling-sand/internal/core"
)

const (
	displayEmpty uint8 = 0
	displaySand  uint8 = 1
)

var sandPalette = []color.RGBA{
	displayEmpty: {R: 25, G: 25, B: 25, A: 255},
	displaySand:  {R: 243, G: 238, B: 73, A: 255},
}

// Palette exposes the color palette indexed by display value.
func (e *Engine) Palette() []color.RGBA {
	return sandPalette
}

func (e *Engine) rebuildDisplay() {
	w, h := e.grid.Dimensions()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := displayEmpty
			if cell, _ := e.grid.Get(row, col); cell == core.Occupied {
				v = displaySand
			}
			e.display[row*w+col] = v
		}
	}
}
