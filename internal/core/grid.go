package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize is returned when a grid is requested with a non-positive
// width or height.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// CellBuffer stores one generation of cells in row-major order.
type CellBuffer struct {
	W, H int
	data []Cell
}

// NewCellBuffer allocates an all-Dead buffer with the given dimensions.
func NewCellBuffer(w, h int) (*CellBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return &CellBuffer{W: w, H: h, data: make([]Cell, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *CellBuffer) Cells() []Cell { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *CellBuffer) Index(x, y int) int { return y*b.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *CellBuffer) Wrap(x, y int) (int, int) {
	x = (x%b.W + b.W) % b.W
	y = (y%b.H + b.H) % b.H
	return x, y
}

// At returns the cell at (x, y) after wrapping.
func (b *CellBuffer) At(x, y int) Cell {
	x, y = b.Wrap(x, y)
	return b.data[b.Index(x, y)]
}

// Fill sets every cell to c.
func (b *CellBuffer) Fill(c Cell) {
	for i := range b.data {
		b.data[i] = c
	}
}

// CopyFrom overwrites b with the contents of src. Shapes must match.
func (b *CellBuffer) CopyFrom(src *CellBuffer) {
	copy(b.data, src.data)
}

// Count returns how many cells hold the value c.
func (b *CellBuffer) Count(c Cell) int {
	n := 0
	for _, v := range b.data {
		if v == c {
			n++
		}
	}
	return n
}
