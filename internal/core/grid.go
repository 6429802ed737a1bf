package core

// FloatGrid stores a 2D grid of continuous cell values in row-major order.
// Values are expected to stay in [0, 1]; the grid itself does not enforce it.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *FloatGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the value at (x, y) after toroidal wrapping.
func (g *FloatGrid) At(x, y int) float64 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set writes the value at (x, y) after toroidal wrapping.
func (g *FloatGrid) Set(x, y int, v float64) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyFrom overwrites this grid with the contents of src. Grids with
// mismatched dimensions are left untouched.
func (g *FloatGrid) CopyFrom(src *FloatGrid) {
	if src == nil || src.W != g.W || src.H != g.H {
		return
	}
	copy(g.data, src.data)
}
