package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Species  string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Speed    int
	DT       float64
	Seed     int64
	Mode     string
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Species:  "orbium",
		Width:    256,
		Height:   256,
		Scale:    3,
		TPS:      30,
		Speed:    1,
		DT:       0.1,
		Seed:     1337,
		Mode:     "species",
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Species, "species", c.Species, "species preset to run")
	fs.IntVar(&c.Width, "w", c.Width, "field width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "field height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Speed, "speed", c.Speed, "ticks per displayed frame")
	fs.Float64Var(&c.DT, "dt", c.DT, "integration time step")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for pattern initialization")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initializer mode (clear|seed|random|species|pattern)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
}
