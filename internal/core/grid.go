package core

import (
	"math"

	"allrgb/internal/colorspace"
)

// ColorGrid stores a 2D grid of color bases in row-major order. Each cell is
// either empty or holds exactly one base.
type ColorGrid struct {
	W, H   int
	cells  []colorspace.Base
	filled []bool
	count  int
}

// NewColorGrid allocates an empty grid with the given dimensions.
func NewColorGrid(w, h int) *ColorGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ColorGrid{W: w, H: h, cells: make([]colorspace.Base, w*h), filled: make([]bool, w*h)}
}

// Size returns the grid dimensions.
func (g *ColorGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *ColorGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ColorGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// WrapPos applies toroidal wrapping to a real-valued position so both
// components land in [0, W) and [0, H).
func (g *ColorGrid) WrapPos(x, y float64) (float64, float64) {
	return wrapFloat(x, g.W), wrapFloat(y, g.H)
}

// Nearest rounds a wrapped real-valued position to the closest cell. A
// position that rounds up to the far edge maps back onto column or row zero.
func (g *ColorGrid) Nearest(x, y float64) Location {
	cx, cy := g.Wrap(int(math.Round(x)), int(math.Round(y)))
	return Location{X: cx, Y: cy}
}

func wrapFloat(v float64, n int) float64 {
	size := float64(n)
	v -= math.Floor(v/size) * size
	if v >= size {
		v = 0
	}
	return v
}

// Filled reports whether the cell at loc holds a color.
func (g *ColorGrid) Filled(loc Location) bool {
	return g.filled[g.Index(loc.X, loc.Y)]
}

// At returns the base stored at loc and whether the cell is filled.
func (g *ColorGrid) At(loc Location) (colorspace.Base, bool) {
	idx := g.Index(loc.X, loc.Y)
	return g.cells[idx], g.filled[idx]
}

// Set stores b at loc. It returns false and leaves the grid untouched when the
// cell is already filled.
func (g *ColorGrid) Set(loc Location, b colorspace.Base) bool {
	idx := g.Index(loc.X, loc.Y)
	if g.filled[idx] {
		return false
	}
	g.cells[idx] = b
	g.filled[idx] = true
	g.count++
	return true
}

// Count returns the number of filled cells.
func (g *ColorGrid) Count() int { return g.count }

// Full reports whether every cell is filled.
func (g *ColorGrid) Full() bool { return g.count == len(g.cells) }

// Cells exposes the backing slice in row-major order. Entries for empty cells
// are zero.
func (g *ColorGrid) Cells() []colorspace.Base { return g.cells }
