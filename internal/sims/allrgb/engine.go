// Package allrgb places every color of a discretized RGB cube exactly once on
// a square torus, growing each color out of the spot held by its nearest
// already-placed neighbor.
package allrgb

import (
	"errors"
	"fmt"
	"math"

	"allrgb/internal/colorspace"
	"allrgb/internal/core"
	prng "allrgb/pkg/core"
)

// ErrInvariant reports internal state the placement loop should never reach.
var ErrInvariant = errors.New("allrgb: invariant violated")

// Stats counts how colors were placed during a run.
type Stats struct {
	Seeds     int
	Grown     int
	Fallbacks int
	WalkSteps int
}

// Placed returns the number of colors placed so far.
func (s Stats) Placed() int { return s.Seeds + s.Grown + s.Fallbacks }

// Engine holds the evolving world state of one mosaic run.
type Engine struct {
	cfg   Config
	size  int
	space colorspace.Space
	rng   *prng.RNG

	grid    *core.ColorGrid
	heading []float64
	open    *core.OpenSet
	index   *ProximityIndex

	next  int
	stats Stats
}

// New validates cfg, generates the color space and allocates an empty grid.
// The shuffle of the processing order is the first draw from the run's RNG.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := prng.NewRNG(cfg.Seed)
	space, err := colorspace.Generate(cfg.Scale, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	size := cfg.Size()
	if size*size != len(space.Bases) {
		return nil, fmt.Errorf("%w: %d cells for %d colors", ErrInvariant, size*size, len(space.Bases))
	}
	return &Engine{
		cfg:     cfg,
		size:    size,
		space:   space,
		rng:     r,
		grid:    core.NewColorGrid(size, size),
		heading: make([]float64, size*size),
		open:    core.NewOpenSet(size, size),
		index:   NewProximityIndex(space.ColorSize, size),
	}, nil
}

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Grid exposes the placement grid.
func (e *Engine) Grid() *core.ColorGrid { return e.grid }

// Space exposes the color space in processing order.
func (e *Engine) Space() colorspace.Space { return e.space }

// Stats returns placement counters.
func (e *Engine) Stats() Stats { return e.stats }

// Remaining returns the number of colors still waiting for a cell.
func (e *Engine) Remaining() int { return len(e.space.Bases) - e.next }

// Done reports whether every color has been placed.
func (e *Engine) Done() bool { return e.next >= len(e.space.Bases) }

// Heading returns the walk heading recorded when loc was filled.
func (e *Engine) Heading(loc core.Location) float64 {
	return e.heading[e.grid.Index(loc.X, loc.Y)]
}

// Step places the next color in processing order. The first NumSeeds colors
// are dropped on random open cells; later ones walk out from their nearest
// placed neighbor and fall back to a random open cell when the walk budget
// runs out. Step is a no-op once Done reports true.
func (e *Engine) Step() error {
	if e.Done() {
		return nil
	}
	i := e.next
	b := e.space.Bases[i]
	e.next++

	if i < e.cfg.NumSeeds {
		if err := e.seed(b); err != nil {
			return err
		}
		e.stats.Seeds++
		return nil
	}

	grown, err := e.grow(b)
	if err != nil {
		return err
	}
	if grown {
		e.stats.Grown++
		return nil
	}
	if err := e.seed(b); err != nil {
		return err
	}
	e.stats.Fallbacks++
	return nil
}

// Run places every remaining color and checks that the grid came out full.
func (e *Engine) Run() error {
	for !e.Done() {
		if err := e.Step(); err != nil {
			return err
		}
	}
	return e.Verify()
}

// Verify checks that every cell is filled and no location is left open.
func (e *Engine) Verify() error {
	if !e.grid.Full() {
		return fmt.Errorf("%w: %d of %d cells filled", ErrInvariant, e.grid.Count(), e.size*e.size)
	}
	if e.open.Len() != 0 {
		return fmt.Errorf("%w: %d locations still open on a full grid", ErrInvariant, e.open.Len())
	}
	return nil
}

func (e *Engine) seed(b colorspace.Base) error {
	loc, ok := e.open.RemoveRandom(e.rng)
	if !ok {
		return fmt.Errorf("%w: no open location left for %v", ErrInvariant, b)
	}
	return e.place(b, loc, e.rng.Angle())
}

func (e *Engine) grow(b colorspace.Base) (bool, error) {
	origin, err := e.index.FindNearest(b, e.space.Offsets)
	if err != nil {
		return false, err
	}
	dir := e.Heading(origin)
	x, y := float64(origin.X), float64(origin.Y)
	budget := e.cfg.CycleCap * e.size
	bounds := e.Size()

	for step := 1; step <= budget; step++ {
		x += math.Sin(dir)
		y += math.Cos(dir)
		dir += e.cfg.TurnRate / math.Pow(float64(step), e.cfg.Alpha)
		x, y = e.grid.WrapPos(x, y)
		e.stats.WalkSteps++

		loc := e.grid.Nearest(x, y)
		if !loc.In(bounds) {
			return false, fmt.Errorf("%w: walk left the grid at %v", ErrInvariant, loc)
		}
		if e.grid.Filled(loc) {
			continue
		}
		if !e.open.Remove(loc) {
			return false, fmt.Errorf("%w: empty cell %v missing from open set", ErrInvariant, loc)
		}
		return true, e.place(b, loc, dir)
	}
	return false, nil
}

// place fills loc with b. The caller has already taken loc out of the open set.
func (e *Engine) place(b colorspace.Base, loc core.Location, dir float64) error {
	if !e.grid.Set(loc, b) {
		return fmt.Errorf("%w: cell %v filled twice", ErrInvariant, loc)
	}
	e.heading[e.grid.Index(loc.X, loc.Y)] = dir
	e.index.Put(b, loc)
	return nil
}
