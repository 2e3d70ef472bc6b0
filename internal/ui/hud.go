//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 15
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	title    string
	status   string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: Title(sim)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot and the status line.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
		return
	}
	h.snapshot = core.ParameterSnapshot{}
}

// Draw renders the panel at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for i, line := range PanelLines(h.title, h.snapshot) {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 243, G: 238, B: 73, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, height-panelPadding, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
