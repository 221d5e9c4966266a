package app

import (
	"flag"

	"allrgb/internal/sims/allrgb"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale    int
	Seeds    int
	Turn     float64
	Alpha    float64
	Cycle    int
	Seed     int64
	Out      string
	Preview  bool
	Progress int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := allrgb.DefaultConfig()
	return &Config{
		Scale:    d.Scale,
		Seeds:    d.NumSeeds,
		Turn:     d.TurnRate,
		Alpha:    d.Alpha,
		Cycle:    d.CycleCap,
		Seed:     d.Seed,
		Out:      ".",
		Progress: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "cube root of the side length; colors per channel is scale²")
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "colors placed at random before growth starts")
	fs.Float64Var(&c.Turn, "turn", c.Turn, "initial turn rate of a growth walk (radians per step)")
	fs.Float64Var(&c.Alpha, "alpha", c.Alpha, "decay exponent of the turn rate")
	fs.IntVar(&c.Cycle, "cycle", c.Cycle, "walk budget in multiples of the side length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source")
	fs.StringVar(&c.Out, "out", c.Out, "directory the image is written to")
	fs.BoolVar(&c.Preview, "preview", c.Preview, "show the finished image in a window (ebiten builds only)")
	fs.IntVar(&c.Progress, "progress", c.Progress, "progress reports per second")
}

// Mosaic returns the placement parameters.
func (c *Config) Mosaic() allrgb.Config {
	return allrgb.Config{
		Scale:    c.Scale,
		NumSeeds: c.Seeds,
		TurnRate: c.Turn,
		Alpha:    c.Alpha,
		CycleCap: c.Cycle,
		Seed:     c.Seed,
	}
}
