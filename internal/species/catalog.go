package species

// Catalog is a fixed, ordered list of presets built at construction. The
// first entry is the default selection. Entries are never added, removed,
// or mutated at runtime; accessors hand out copies.
type Catalog struct {
	list  []Species
	index map[string]int
}

// NewCatalog builds the compiled-in preset list.
func NewCatalog() *Catalog {
	c := &Catalog{index: map[string]int{}}
	for _, s := range defaultPresets() {
		c.index[s.Name] = len(c.list)
		c.list = append(c.list, s)
	}
	return c
}

// Len reports the number of presets.
func (c *Catalog) Len() int { return len(c.list) }

// At returns a copy of the preset at position i. Out-of-range indices fall
// back to the default preset.
func (c *Catalog) At(i int) Species {
	if i < 0 || i >= len(c.list) {
		i = 0
	}
	return c.list[i].Clone()
}

// Default returns a copy of the default (first) preset.
func (c *Catalog) Default() Species { return c.At(0) }

// ByName looks up a preset by name. The second return value reports whether
// the name exists; on a miss the zero Species is returned.
func (c *Catalog) ByName(name string) (Species, bool) {
	i, ok := c.index[name]
	if !ok {
		return Species{}, false
	}
	return c.list[i].Clone(), true
}

// IndexOf reports the position of the named preset, or -1 when absent.
func (c *Catalog) IndexOf(name string) int {
	i, ok := c.index[name]
	if !ok {
		return -1
	}
	return i
}

// Names returns the preset names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.list))
	for i, s := range c.list {
		names[i] = s.Name
	}
	return names
}

func defaultPresets() []Species {
	return []Species{
		{
			Name:        "orbium",
			R:           13,
			Beta:        []float64{1},
			KernelSigma: 0.15,
			Mu:          0.15,
			Sigma:       0.017,
			Mode:        SeedSpeciesBlob,
			Category:    "mover",
			Description: "Classic single-ring glider; drifts across the field while holding its shape.",
		},
		{
			Name:        "gyrorbium",
			R:           13,
			Beta:        []float64{1},
			KernelSigma: 0.15,
			Mu:          0.156,
			Sigma:       0.0224,
			Mode:        SeedSpeciesBlob,
			Category:    "mover",
			Description: "Rotating variant of orbium; travels on a curved path.",
		},
		{
			Name:        "scutium",
			R:           13,
			Beta:        []float64{1},
			KernelSigma: 0.15,
			Mu:          0.28,
			Sigma:       0.035,
			Mode:        SeedSpeciesBlob,
			Category:    "stationary",
			Description: "Shield-shaped stable blob that settles near the seed point.",
		},
		{
			Name:        "geminium",
			R:           18,
			Beta:        []float64{0.5, 1, 0.667},
			KernelSigma: 0.125,
			Mu:          0.26,
			Sigma:       0.036,
			Mode:        SeedSpeciesBlob,
			Category:    "complex",
			Description: "Three-ring kernel producing branching, self-replicating colonies.",
		},
		{
			Name:        "pyroparvus",
			R:           5,
			Beta:        []float64{1, 0.25},
			KernelSigma: 0.2,
			Mu:          0.31,
			Sigma:       0.048,
			Mode:        SeedSpeciesBlob,
			Category:    "swarm",
			Description: "Small-kernel species; spawns as a 3x3 colony of independent organisms.",
		},
		{
			Name:        "annulus",
			R:           10,
			Beta:        []float64{1},
			KernelSigma: 0.15,
			Mu:          0.22,
			Sigma:       0.03,
			Pattern:     annulusPattern(),
			Mode:        SeedExplicitPattern,
			Category:    "stationary",
			Description: "Ring seed stamped from an explicit pattern; relaxes into a stable disc.",
		},
	}
}

// annulusPattern returns a 15x15 ring with a soft inner and outer edge.
func annulusPattern() [][]float64 {
	const n = 15
	const inner, outer = 3.0, 6.0
	c := float64(n-1) / 2
	p := make([][]float64, n)
	for y := 0; y < n; y++ {
		p[y] = make([]float64, n)
		for x := 0; x < n; x++ {
			dx := float64(x) - c
			dy := float64(y) - c
			r := dx*dx + dy*dy
			switch {
			case r < inner*inner:
				p[y][x] = 0.15
			case r <= outer*outer:
				p[y][x] = 0.9
			default:
				p[y][x] = 0
			}
		}
	}
	return p
}
