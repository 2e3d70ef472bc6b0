package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPaletteRGBA(t *testing.T) {
	pal := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)

	FillPaletteRGBA(buf, []uint8{0, 1, 9}, pal)

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}, buf)
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	FillPaletteRGBA(buf, []uint8{1}, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)
}

type palettedSim struct{ pal []color.RGBA }

func (p palettedSim) Palette() []color.RGBA { return p.pal }

func TestPaletteFor(t *testing.T) {
	pal := []color.RGBA{{R: 10, A: 255}}
	assert.Equal(t, pal, PaletteFor(palettedSim{pal: pal}))
	assert.Equal(t, DefaultPalette, PaletteFor(palettedSim{}))
	assert.Equal(t, DefaultPalette, PaletteFor(struct{}{}))

	assert.Equal(t, pal[0], PaletteColor(pal, 3))
	assert.Equal(t, color.RGBA{}, PaletteColor(nil, 0))
}
