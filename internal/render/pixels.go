package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black. buf must hold four bytes
// per cell.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PaletteColor returns the palette entry for a cell value with the same
// clamping as FillPaletteRGBA.
func PaletteColor(palette []color.RGBA, c uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(c)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// PaletteProvider is implemented by sims that map display values to colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// DefaultPalette maps 0 to black and everything else to white.
var DefaultPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// PaletteFor returns the sim's palette or DefaultPalette.
func PaletteFor(sim any) []color.RGBA {
	if p, ok := sim.(PaletteProvider); ok {
		if pal := p.Palette(); len(pal) > 0 {
			return pal
		}
	}
	return DefaultPalette
}
