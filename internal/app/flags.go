package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim    string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Dunes  bool
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults: a 160x120 grid
// drawn with 5px tiles, stepped every 20ms.
func NewConfig() *Config {
	return &Config{Sim: "sand", Width: 160, Height: 120, Scale: 5, TPS: 50, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Dunes, "dunes", c.Dunes, "seed the grid with dunes on reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
}

// SimConfig renders the sim-specific options in registry factory form.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatInt(c.Seed, 10),
		"dunes": strconv.FormatBool(c.Dunes),
	}
}
