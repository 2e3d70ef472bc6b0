package sand

import (
	"math"

	"falling-sand/internal/core"

	"github.com/aquilax/go-perlin"
)

const (
	duneAlpha   = 2.0
	duneBeta    = 2.0
	duneOctaves = 3
)

// seedDunes fills each column from the bottom up to a height sampled from 1D
// perlin noise, so the same seed always yields the same skyline.
func (e *Engine) seedDunes(seed int64) {
	w, h := e.grid.Dimensions()
	peak := e.cfg.DuneHeight * float64(h)
	if peak <= 0 {
		return
	}
	noise := perlin.NewPerlin(duneAlpha, duneBeta, duneOctaves, seed)
	for col := 0; col < w; col++ {
		n := noise.Noise1D(float64(col) * e.cfg.DuneScale)
		level := (n + 1) / 2
		level = math.Max(0, math.Min(1, level))
		height := int(math.Round(level * peak))
		if height > h {
			height = h
		}
		for row := h - height; row < h; row++ {
			_ = e.grid.Set(row, col, core.Occupied)
		}
	}
}
