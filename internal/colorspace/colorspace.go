// Package colorspace enumerates the discretized RGB cube used by the mosaic
// and the signed probe offsets used to search it.
package colorspace

import (
	"cmp"
	"errors"
	"fmt"
	"image/color"
	"slices"

	"allrgb/pkg/core"
)

// MinScale and MaxScale bound the supported scale. Components must fit in a
// byte, so colorSize = scale² may not exceed 256.
const (
	MinScale = 2
	MaxScale = 16
)

// ErrScale reports a scale outside [MinScale, MaxScale].
var ErrScale = errors.New("colorspace: scale out of range")

// Base is a discretized color with components in [0, colorSize-1].
type Base [3]uint8

// Offset is a signed probe direction in color space.
type Offset [3]int16

// SquaredMagnitude returns the squared Euclidean length of o.
func (o Offset) SquaredMagnitude() int {
	return int(o[0])*int(o[0]) + int(o[1])*int(o[1]) + int(o[2])*int(o[2])
}

// Space holds every base of a scale in processing order together with the
// global probe order.
type Space struct {
	Scale     int
	ColorSize int
	Bases     []Base
	Offsets   []Offset
}

// Dimensions returns colorSize and the mosaic side length for scale.
func Dimensions(scale int) (colorSize, size int) {
	return scale * scale, scale * scale * scale
}

// CheckScale validates scale.
func CheckScale(scale int) error {
	if scale < MinScale || scale > MaxScale {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrScale, scale, MinScale, MaxScale)
	}
	return nil
}

// Generate enumerates all scale⁶ bases, derives the probe offsets from them
// and then shuffles the bases with rng. The shuffle is the only draw taken
// from rng.
func Generate(scale int, rng *core.RNG) (Space, error) {
	if err := CheckScale(scale); err != nil {
		return Space{}, err
	}
	cs, _ := Dimensions(scale)
	total := cs * cs * cs

	bases := make([]Base, total)
	for n := range bases {
		bases[n] = Base{uint8(n % cs), uint8((n / cs) % cs), uint8(n / (cs * cs))}
	}

	offsets := Offsets(bases)

	rng.Shuffle(len(bases), func(i, j int) {
		bases[i], bases[j] = bases[j], bases[i]
	})

	return Space{Scale: scale, ColorSize: cs, Bases: bases, Offsets: offsets}, nil
}

// Offsets expands every base into its sign variants and sorts them by squared
// magnitude, breaking ties lexicographically. A zero component has a single
// sign, so each distinct offset appears once; a repeat would only retry a
// probe that already missed. Bases must be distinct.
func Offsets(bases []Base) []Offset {
	n := 0
	for _, b := range bases {
		n += 1 << nonZero(b)
	}
	out := make([]Offset, 0, n)
	for _, b := range bases {
		out = appendSignVariants(out, b)
	}
	slices.SortFunc(out, compareOffsets)
	return out
}

func nonZero(b Base) int {
	n := 0
	for _, c := range b {
		if c != 0 {
			n++
		}
	}
	return n
}

func appendSignVariants(out []Offset, b Base) []Offset {
	for mask := 0; mask < 8; mask++ {
		var o Offset
		skip := false
		for i := range b {
			c := int16(b[i])
			if mask&(1<<i) != 0 {
				if c == 0 {
					skip = true
					break
				}
				c = -c
			}
			o[i] = c
		}
		if !skip {
			out = append(out, o)
		}
	}
	return out
}

func compareOffsets(a, b Offset) int {
	if c := cmp.Compare(a.SquaredMagnitude(), b.SquaredMagnitude()); c != 0 {
		return c
	}
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Add applies o to b. The boolean is false when any component leaves
// [0, colorSize-1].
func (b Base) Add(o Offset, colorSize int) (Base, bool) {
	var out Base
	for i := range b {
		c := int(b[i]) + int(o[i])
		if c < 0 || c >= colorSize {
			return Base{}, false
		}
		out[i] = uint8(c)
	}
	return out, true
}

// Index returns the dense index of b, the inverse of the enumeration used by
// Generate.
func (b Base) Index(colorSize int) int {
	return int(b[0]) + int(b[1])*colorSize + int(b[2])*colorSize*colorSize
}

// Scale8 maps a component in [0, colorSize-1] onto [0, 255] with rounding.
func Scale8(c uint8, colorSize int) uint8 {
	maxC := colorSize - 1
	if maxC <= 0 {
		return 0
	}
	return uint8((2*int(c)*255 + maxC) / (2 * maxC))
}

// ToRGB converts b to an opaque 8-bit color.
func ToRGB(b Base, colorSize int) color.RGBA {
	return color.RGBA{
		R: Scale8(b[0], colorSize),
		G: Scale8(b[1], colorSize),
		B: Scale8(b[2], colorSize),
		A: 255,
	}
}
