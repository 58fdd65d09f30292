package render

import (
	"image/color"

	"torus-life/internal/core"
)

// rgba packs a colour into the byte order ebiten expects for WritePixels.
func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA paints one pixel per cell into buf: live cells get on, dead
// cells get off. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	live, dead := rgba(on), rgba(off)
	for i, c := range cells {
		px := dead
		if c.IsAlive() {
			px = live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
