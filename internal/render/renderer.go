//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter uploads a continuous-valued field into a single RGBA image.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a field of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	fp := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Blit color-maps the provided values into the painter image and draws it.
func (fp *FieldPainter) Blit(dst *ebiten.Image, values []float64, scale int) {
	if len(values) != fp.w*fp.h {
		return
	}
	FillFieldRGBA(fp.buf, values)
	fp.img.ReplacePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
