package ui

import (
	"fmt"

	"falling-sand/internal/core"
)

// PanelLines flattens a parameter snapshot into the text rows shown on the
// HUD panel: a group header followed by indented "label: value" rows.
func PanelLines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// Title builds the panel heading for a sim.
func Title(sim core.Sim) string {
	if sim == nil {
		return "falling-sand"
	}
	size := sim.Size()
	return fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
}
