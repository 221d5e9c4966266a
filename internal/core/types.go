package core

import "fmt"

// Size describes the dimensions of a placement grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells covered by the size.
func (s Size) Cells() int { return s.W * s.H }

// Location addresses a single grid cell.
type Location struct {
	X int
	Y int
}

// String renders the location as "(x,y)".
func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.X, l.Y) }

// In reports whether the location lies inside s.
func (l Location) In(s Size) bool {
	return l.X >= 0 && l.X < s.W && l.Y >= 0 && l.Y < s.H
}
