package ui

import (
	"fmt"

	"torus-life/internal/core"
)

// statsProvider is implemented by sims that report generation telemetry.
type statsProvider interface {
	Generation() int
	Population() int
}

// StatusLine formats the overlay text for a sim. Sims without telemetry only
// report their name and size.
func StatusLine(sim core.Sim, paused bool) string {
	size := sim.Size()
	line := fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)
	if stats, ok := sim.(statsProvider); ok {
		pop := stats.Population()
		pct := 0.0
		if total := size.Cells(); total > 0 {
			pct = 100 * float64(pop) / float64(total)
		}
		line += fmt.Sprintf("  gen %d  pop %d (%.1f%%)", stats.Generation(), pop, pct)
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
