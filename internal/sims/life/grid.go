package life

import (
	"fmt"
	"runtime"
	"time"

	"torus-life/internal/core"

	"golang.org/x/sync/errgroup"
)

// SeedDensity is the probability that a cell starts Alive.
const SeedDensity = 0.33

// parallelThreshold is the smallest grid, in cells, that Step splits across
// goroutines. Smaller grids are stepped on the caller's goroutine.
const parallelThreshold = 4096

// ErrInvalidSize is returned by New and NewEmpty for non-positive dimensions.
var ErrInvalidSize = core.ErrInvalidSize

// Grid is a double-buffered toroidal Game of Life board. One buffer holds the
// most recently completed generation (current); the other is the write target
// of the next Step.
//
// Grid is not safe for concurrent use. Swap, Step and the read accessors must
// be sequenced by the caller.
type Grid struct {
	w, h    int
	bufs    [2]*core.CellBuffer
	cur     int
	gen     int
	workers int
	rng     *core.RNG
}

// DefaultWorkers is the Step parallelism used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Option configures a Grid at construction.
type Option func(*Grid)

// WithSeed seeds the grid from a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(g *Grid) { g.rng = core.NewRNG(seed) }
}

// WithRNG seeds the grid from the provided RNG.
func WithRNG(rng *core.RNG) Option {
	return func(g *Grid) { g.rng = rng }
}

// WithWorkers bounds how many goroutines Step uses. Values below 1 are
// treated as 1.
func WithWorkers(n int) Option {
	return func(g *Grid) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// New returns a grid of w×h cells whose first generation is seeded at
// random with SeedDensity.
func New(w, h int, opts ...Option) (*Grid, error) {
	g, err := NewEmpty(w, h, opts...)
	if err != nil {
		return nil, err
	}
	if g.rng == nil {
		g.rng = core.NewRNG(time.Now().UnixNano())
	}
	g.Reseed(g.rng)
	return g, nil
}

// NewEmpty returns a grid of w×h cells with every cell Dead.
func NewEmpty(w, h int, opts ...Option) (*Grid, error) {
	a, err := core.NewCellBuffer(w, h)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	b, _ := core.NewCellBuffer(w, h)
	g := &Grid{
		w:       w,
		h:       h,
		bufs:    [2]*core.CellBuffer{a, b},
		workers: DefaultWorkers(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Generation returns the number of Step calls completed since the grid was
// last seeded or cleared.
func (g *Grid) Generation() int { return g.gen }

// Current exposes the most recently completed generation. The slice aliases
// the grid's buffer and is only meaningful between Step calls.
func (g *Grid) Current() []core.Cell { return g.bufs[g.cur].Cells() }

// Next exposes the buffer the following Step will write.
func (g *Grid) Next() []core.Cell { return g.bufs[g.cur^1].Cells() }

// At returns the cell at (x, y) in the current generation, wrapping
// out-of-range coordinates.
func (g *Grid) At(x, y int) core.Cell { return g.bufs[g.cur].At(x, y) }

// Population returns the number of Alive cells in the current generation.
func (g *Grid) Population() int { return g.bufs[g.cur].Count(core.Alive) }

// Swap exchanges the roles of the current and next buffers. No cells are
// copied.
func (g *Grid) Swap() { g.cur ^= 1 }

// Reseed fills the current generation at random with SeedDensity and copies
// it into the next buffer, so the seeded generation is readable whether the
// caller swaps before or after stepping.
func (g *Grid) Reseed(rng *core.RNG) {
	cur := g.bufs[g.cur]
	rng.FillBernoulli(cur.Cells(), SeedDensity)
	g.bufs[g.cur^1].CopyFrom(cur)
	g.gen = 0
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	g.bufs[0].Fill(core.Dead)
	g.bufs[1].Fill(core.Dead)
	g.gen = 0
}

// Neighbors returns the number of Alive cells among the eight toroidal
// neighbours of (x, y) in the current generation. On grids narrower than
// three cells the same physical cell may be counted more than once.
func (g *Grid) Neighbors(x, y int) int {
	x, y = g.bufs[g.cur].Wrap(x, y)
	return neighbors(g.Current(), g.w, g.h, x, y)
}

// Step computes the next generation from the current one. It reads only the
// current buffer and writes every cell of the next buffer exactly once, so
// the result does not depend on evaluation order. Step does not swap; call
// Swap to make the result current.
func (g *Grid) Step() {
	cur, nxt := g.Current(), g.Next()
	w, h := g.w, g.h

	bands := g.workers
	if bands > h {
		bands = h
	}
	if bands <= 1 || w*h < parallelThreshold {
		stepRows(cur, nxt, w, h, 0, h)
		g.gen++
		return
	}

	rows := (h + bands - 1) / bands
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for y0 := 0; y0 < h; y0 += rows {
		y1 := min(y0+rows, h)
		eg.Go(func() error {
			stepRows(cur, nxt, w, h, y0, y1)
			return nil
		})
	}
	// Band closures never return an error; Wait only joins them.
	eg.Wait()
	g.gen++
}

// stepRows writes rows [y0, y1) of nxt from cur.
func stepRows(cur, nxt []core.Cell, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			nxt[row+x] = rule(cur[row+x], neighbors(cur, w, h, x, y))
		}
	}
}

func neighbors(cur []core.Cell, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			n += int(cur[ny*w+nx])
		}
	}
	return n
}

// rule applies Conway's B3/S23 rule to a cell with n live neighbours.
func rule(c core.Cell, n int) core.Cell {
	if n == 3 || (n == 2 && c == core.Alive) {
		return core.Alive
	}
	return core.Dead
}
