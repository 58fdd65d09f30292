package life

import (
	"torus-life/internal/core"
)

// Life adapts a Grid to the core.Sim contract driven by the shell.
type Life struct {
	grid *Grid
}

// NewSim returns a Life simulation over a freshly seeded w×h grid.
func NewSim(w, h int, opts ...Option) (*Life, error) {
	g, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	return &Life{grid: g}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the generation to display.
func (l *Life) Cells() []core.Cell { return l.grid.Current() }

// Grid returns the underlying engine.
func (l *Life) Grid() *Grid { return l.grid }

// Generation returns the number of completed steps.
func (l *Life) Generation() int { return l.grid.Generation() }

// Population returns the number of Alive cells on display.
func (l *Life) Population() int { return l.grid.Population() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.grid.Reseed(core.NewRNG(seed))
}

// Step runs one tick: rotate the buffers, then compute the next generation
// from the one that just became current.
func (l *Life) Step() {
	l.grid.Swap()
	l.grid.Step()
}
