//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the debug readout and frame rate over the tree. D toggles it.
type Overlay struct {
	Readout
	visible bool
	img     *ebiten.Image
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.visible }

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(overlayWidth, overlayHeight)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("%s\nFPS: %.1f  TPS: %.1f", o.Text(), ebiten.ActualFPS(), ebiten.ActualTPS()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	screen.DrawImage(o.img, op)
}

const (
	overlayWidth  = 180
	overlayHeight = 136
)
