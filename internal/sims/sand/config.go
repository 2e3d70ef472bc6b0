package sand

import "strconv"

// Config controls the sand world dimensions and initial terrain.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Dunes seeds the bottom of the grid with a noise-shaped pile on Reset.
	Dunes bool
	// DuneHeight is the tallest dune as a fraction of the grid height.
	DuneHeight float64
	// DuneScale is the horizontal noise frequency; larger values give
	// narrower dunes.
	DuneScale float64
}

// DefaultConfig returns the standard configuration: an 800x600 display
// divided into 5px tiles.
func DefaultConfig() Config {
	return Config{
		Width:      160,
		Height:     120,
		Seed:       42,
		DuneHeight: 0.25,
		DuneScale:  0.03,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["dunes"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Dunes = parsed
		}
	}
	if v, ok := cfg["dune_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.DuneHeight = parsed
		}
	}
	if v, ok := cfg["dune_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.DuneScale = parsed
		}
	}
	return c
}

// Map renders the config back into FromMap form.
func (c Config) Map() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"dunes":       strconv.FormatBool(c.Dunes),
		"dune_height": strconv.FormatFloat(c.DuneHeight, 'f', -1, 64),
		"dune_scale":  strconv.FormatFloat(c.DuneScale, 'f', -1, 64),
	}
}
