//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	_ "falling-sand/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	if err != nil {
		log.Fatalf("build sim: %v", err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("falling-sand — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
