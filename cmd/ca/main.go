//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	seed := cfg.ResolveSeed()
	sim, err := life.NewSim(cfg.Width, cfg.Height, life.WithSeed(seed), life.WithWorkers(cfg.Workers))
	if err != nil {
		log.Fatalf("new grid: %v", err)
	}
	log.Printf("life %dx%d seed=%d tps=%d workers=%d", cfg.Width, cfg.Height, seed, cfg.TPS, cfg.Workers)

	game := app.New(sim, cfg, seed)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.CellSize, size.H*cfg.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
