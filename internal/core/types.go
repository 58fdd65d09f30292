package core

// Cell is the state of a single grid square.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated buffers start empty.
	Dead Cell = iota
	// Alive marks a populated cell.
	Alive
)

// IsAlive reports whether the cell is populated.
func (c Cell) IsAlive() bool { return c == Alive }

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Sim defines the minimal contract the shell drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Cell
}
