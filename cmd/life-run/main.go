package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"torus-life/internal/sims/life"
)

func main() {
	width := flag.Int("width", 256, "grid width in cells")
	height := flag.Int("height", 256, "grid height in cells")
	steps := flag.Int("steps", 1000, "generations to simulate")
	every := flag.Int("every", 100, "print population every N generations (0 prints only the summary)")
	seed := flag.Int64("seed", 1337, "seed for the initial generation")
	workers := flag.Int("workers", life.DefaultWorkers(), "goroutines used per generation")
	flag.Parse()

	if *steps < 0 {
		log.Fatalf("steps must not be negative, got %d", *steps)
	}

	grid, err := life.New(*width, *height, life.WithSeed(*seed), life.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("new grid: %v", err)
	}

	total := *width * *height
	initial := grid.Population()
	fmt.Printf("Seed %d: %dx%d grid, initial population %d (%.2f%%)\n",
		*seed, *width, *height, initial, 100*float64(initial)/float64(total))

	peak, peakGen := initial, 0
	start := time.Now()
	for i := 1; i <= *steps; i++ {
		grid.Step()
		grid.Swap()

		pop := grid.Population()
		if pop > peak {
			peak, peakGen = pop, i
		}
		if *every > 0 && i%*every == 0 {
			fmt.Printf("  gen %d: population %d\n", grid.Generation(), pop)
		}
	}
	elapsed := time.Since(start)

	rate := 0.0
	if elapsed > 0 {
		rate = float64(*steps) / elapsed.Seconds()
	}
	fmt.Printf("\nFinal: gen %d, population %d, peak %d at gen %d, %.1f gen/s over %s\n",
		grid.Generation(), grid.Population(), peak, peakGen, rate, elapsed.Round(time.Millisecond))
}
