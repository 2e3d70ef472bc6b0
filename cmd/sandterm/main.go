package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"falling-sand/internal/app"
	"falling-sand/internal/core"
	_ "falling-sand/internal/sims/sand"
	"falling-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width = 0
	cfg.Height = 0
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	// Unset dimensions fill the terminal, keeping the last row for status.
	sw, sh := screen.Size()
	if cfg.Width <= 0 {
		cfg.Width = sw
	}
	if cfg.Height <= 0 {
		cfg.Height = 2 * (sh - 1)
	}

	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	if err != nil {
		screen.Fini()
		log.Fatalf("build sim: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := term.New(screen, sim, cfg).Run(ctx)
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
