package lenia

import "strconv"

// Params holds the tunable constants of the stepping engine and the pattern
// initializer that are independent of any species preset.
type Params struct {
	// DT is the integration time step, Speed the number of ticks executed
	// per Step invocation.
	DT    float64
	Speed int

	// SmallKernelR is the kernel-radius threshold below which the species
	// initializer places a 3x3 colony instead of one large blob. The value
	// is empirical, not derived; recalibrate it if presets change.
	SmallKernelR int

	// SpeciesBlobRadius is the radius of the single large species blob.
	SpeciesBlobRadius int

	// SeedRadius is the radius of the plain centered seed blob.
	SeedRadius int
}

// Config controls the Lenia world dimensions and startup selection.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Species names the catalog preset selected at startup.
	Species string

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Seed:    1337,
		Species: "orbium",
		Params: Params{
			DT:                0.1,
			Speed:             1,
			SmallKernelR:      7,
			SpeciesBlobRadius: 120,
			SeedRadius:        12,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["species"]; ok && v != "" {
		c.Species = v
	}
	if v, ok := cfg["dt"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DT = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Speed = parsed
		}
	}
	if v, ok := cfg["small_kernel_r"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmallKernelR = parsed
		}
	}
	if v, ok := cfg["species_blob_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SpeciesBlobRadius = parsed
		}
	}
	if v, ok := cfg["seed_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.SeedRadius = parsed
		}
	}
	return c
}
