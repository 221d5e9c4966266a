package allrgb

import (
	"fmt"

	"allrgb/internal/colorspace"
	"allrgb/internal/core"
)

// ProximityIndex maps placed colors to the cell they occupy. The table is
// dense over the whole color cube; unplaced entries hold -1.
type ProximityIndex struct {
	colorSize int
	w         int
	cells     []int32
}

// NewProximityIndex allocates an empty index for a colorSize³ cube whose
// colors are placed on a grid w cells wide.
func NewProximityIndex(colorSize, w int) *ProximityIndex {
	cells := make([]int32, colorSize*colorSize*colorSize)
	for i := range cells {
		cells[i] = -1
	}
	return &ProximityIndex{colorSize: colorSize, w: w, cells: cells}
}

// Put records that b now lives at loc.
func (p *ProximityIndex) Put(b colorspace.Base, loc core.Location) {
	p.cells[b.Index(p.colorSize)] = int32(loc.Y*p.w + loc.X)
}

// Get returns the location of b if it has been placed.
func (p *ProximityIndex) Get(b colorspace.Base) (core.Location, bool) {
	idx := p.cells[b.Index(p.colorSize)]
	if idx < 0 {
		return core.Location{}, false
	}
	return core.Location{X: int(idx) % p.w, Y: int(idx) / p.w}, true
}

// FindNearest walks the global probe order and returns the location of the
// first placed color reachable from b. Finding nothing means no color has
// been placed yet, which the engine never allows.
func (p *ProximityIndex) FindNearest(b colorspace.Base, offsets []colorspace.Offset) (core.Location, error) {
	for _, o := range offsets {
		probe, ok := b.Add(o, p.colorSize)
		if !ok {
			continue
		}
		if loc, ok := p.Get(probe); ok {
			return loc, nil
		}
	}
	return core.Location{}, fmt.Errorf("%w: no placed neighbor for %v", ErrInvariant, b)
}
