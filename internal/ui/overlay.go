//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 4
	overlayHeight  = 18
)

// Overlay draws a one-line status bar on top of the grid.
type Overlay struct {
	sim     core.Sim
	visible bool
	backing *ebiten.Image
}

// NewOverlay constructs a visible overlay for the provided sim.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Update toggles visibility on the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the status line onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.visible {
		return
	}
	w := screen.Bounds().Dx()
	if w <= 0 {
		return
	}
	if o.backing == nil || o.backing.Bounds().Dx() != w {
		o.backing = ebiten.NewImage(w, overlayHeight)
		o.backing.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(o.backing, nil)

	face := basicfont.Face7x13
	text.Draw(screen, StatusLine(o.sim, paused), face, overlayPadding, overlayHeight-overlayPadding-1, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
