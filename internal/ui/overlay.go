//go:build ebiten

package ui

import (
	"github.com/NeueNeo/lenia/internal/core"
	"github.com/NeueNeo/lenia/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type potentialProvider interface {
	EnableDiagnostics(on bool)
	Potential() []float64
}

// Overlay draws optional diagnostic visuals on top of the field view.
// Currently it renders the per-cell local potential as a heat layer.
type Overlay struct {
	sim   core.Sim
	scale int

	showPotential bool
	img           *ebiten.Image
	buf           []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPotential = !o.showPotential
		if provider, ok := o.sim.(potentialProvider); ok {
			provider.EnableDiagnostics(o.showPotential)
		}
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showPotential {
		return
	}
	provider, ok := o.sim.(potentialProvider)
	if !ok {
		return
	}
	values := provider.Potential()
	size := o.sim.Size()
	total := size.W * size.H
	if len(values) != total || total == 0 {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}
	render.FillHeatRGBA(o.buf, values, 64, 164, 223)
	o.img.ReplacePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
