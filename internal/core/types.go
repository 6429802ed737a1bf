package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a continuous-field simulation must
// implement for the render and UI layers.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Values() []float64
}
