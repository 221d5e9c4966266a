package allrgb

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"allrgb/internal/colorspace"
)

// ErrConfig reports a parameter tuple that cannot produce a mosaic.
var ErrConfig = errors.New("allrgb: invalid config")

// Config holds the parameters of a single mosaic run.
type Config struct {
	Scale    int
	NumSeeds int
	TurnRate float64
	Alpha    float64
	CycleCap int
	Seed     int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Scale:    12,
		NumSeeds: 35,
		TurnRate: 0.01,
		Alpha:    0.2,
		CycleCap: 10,
		Seed:     0,
	}
}

// ColorSize returns the number of levels per color component.
func (c Config) ColorSize() int {
	cs, _ := colorspace.Dimensions(c.Scale)
	return cs
}

// Size returns the side length of the mosaic.
func (c Config) Size() int {
	_, size := colorspace.Dimensions(c.Scale)
	return size
}

// Colors returns the total number of colors, which equals the cell count.
func (c Config) Colors() int {
	s := c.Size()
	return s * s
}

// Validate rejects tuples the placement loop cannot complete.
func (c Config) Validate() error {
	if err := colorspace.CheckScale(c.Scale); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.NumSeeds <= 0 || c.NumSeeds >= c.Colors() {
		return fmt.Errorf("%w: num seeds %d not in (0, %d)", ErrConfig, c.NumSeeds, c.Colors())
	}
	if c.CycleCap < 1 {
		return fmt.Errorf("%w: cycle cap %d must be positive", ErrConfig, c.CycleCap)
	}
	if math.IsNaN(c.TurnRate) || math.IsInf(c.TurnRate, 0) {
		return fmt.Errorf("%w: turn rate %v must be finite", ErrConfig, c.TurnRate)
	}
	if math.IsNaN(c.Alpha) || math.IsInf(c.Alpha, 0) {
		return fmt.Errorf("%w: alpha %v must be finite", ErrConfig, c.Alpha)
	}
	return nil
}

// Filename derives the output name from the parameter tuple.
func (c Config) Filename() string {
	return fmt.Sprintf("img-%d-%d-%s-%s-%d-%d.png",
		c.Scale, c.NumSeeds, formatFloat(c.TurnRate), formatFloat(c.Alpha), c.CycleCap, c.Seed)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
