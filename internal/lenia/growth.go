package lenia

// Growth maps the local potential u to a per-cell rate of change in [-1, 1].
// It peaks at exactly 1 when u equals mu and approaches -1 as |u-mu| grows.
func Growth(u, mu, sigma float64) float64 {
	return 2*bell(u, mu, sigma) - 1
}
