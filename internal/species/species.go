package species

// SeedMode selects the pattern-initialization strategy used to populate the
// field for a preset. Presets carry the tag; the generation algorithms live
// with the engine.
type SeedMode int

const (
	// SeedClear zeroes every cell.
	SeedClear SeedMode = iota
	// SeedBlob places a single Gaussian-falloff blob at the field center.
	SeedBlob
	// SeedRandomBlob fills one broad centered blob with uniform noise.
	SeedRandomBlob
	// SeedSpeciesBlob seeds near the species' attractor basin, keyed on
	// the kernel radius.
	SeedSpeciesBlob
	// SeedExplicitPattern stamps the preset's Pattern at the field center.
	SeedExplicitPattern
)

// String returns the mode name used in config maps and CLI flags.
func (m SeedMode) String() string {
	switch m {
	case SeedClear:
		return "clear"
	case SeedBlob:
		return "seed"
	case SeedRandomBlob:
		return "random"
	case SeedSpeciesBlob:
		return "species"
	case SeedExplicitPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// ParseSeedMode maps a mode name to its SeedMode tag.
func ParseSeedMode(name string) (SeedMode, bool) {
	switch name {
	case "clear":
		return SeedClear, true
	case "seed":
		return SeedBlob, true
	case "random":
		return SeedRandomBlob, true
	case "species":
		return SeedSpeciesBlob, true
	case "pattern":
		return SeedExplicitPattern, true
	default:
		return SeedClear, false
	}
}

// Species bundles the kernel and growth parameters that produce a
// characteristic self-organizing structure, plus presentation metadata.
type Species struct {
	Name string

	// R is the kernel radius in cells.
	R int
	// Beta holds the ordered ring weights (1 to 4 entries, each >= 0).
	Beta []float64
	// KernelSigma controls the width of each kernel ring bell.
	KernelSigma float64

	// Mu is the growth function center, Sigma its width.
	Mu    float64
	Sigma float64

	// Pattern, when non-nil, is an explicit seed grid with values in [0, 1].
	Pattern [][]float64

	// Mode tags the initialization strategy used when this preset spawns.
	Mode SeedMode

	Category    string
	Description string
}

// Clone returns a deep copy so callers can hold or mutate a preset without
// affecting catalog state.
func (s Species) Clone() Species {
	out := s
	out.Beta = append([]float64(nil), s.Beta...)
	if s.Pattern != nil {
		out.Pattern = make([][]float64, len(s.Pattern))
		for i, row := range s.Pattern {
			out.Pattern[i] = append([]float64(nil), row...)
		}
	}
	return out
}
