//go:build ebiten

package render

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter draws a Life generation as a board of filled squares. The
// generation is uploaded into a grid-sized image at one pixel per cell and
// then scaled up to the window.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates the upload image and pixel buffer for a w×h board.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Blit draws cells onto dst with each cell cellSize screen pixels wide.
// Generations whose length does not match the board are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, on, off color.Color, cellSize int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, &op)
}
