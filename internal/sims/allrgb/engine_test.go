package allrgb

import (
	"errors"
	"slices"
	"testing"

	"allrgb/internal/colorspace"
	"allrgb/internal/core"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Scale = 2
	cfg.NumSeeds = 3
	cfg.CycleCap = 2
	cfg.Seed = 42
	return cfg
}

func checkBijection(t *testing.T, e *Engine) {
	t.Helper()
	grid := e.Grid()
	if !grid.Full() {
		t.Fatalf("expected full grid, %d of %d cells filled", grid.Count(), e.Size().Cells())
	}
	cs := e.Space().ColorSize
	seen := make([]bool, cs*cs*cs)
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			loc := core.Location{X: x, Y: y}
			b, ok := grid.At(loc)
			if !ok {
				t.Fatalf("cell %v empty after run", loc)
			}
			idx := b.Index(cs)
			if seen[idx] {
				t.Fatalf("color %v placed twice", b)
			}
			seen[idx] = true
			if got, ok := e.index.Get(b); !ok || got != loc {
				t.Fatalf("index maps %v to %v (ok=%v), grid holds it at %v", b, got, ok, loc)
			}
		}
	}
	if e.open.Len() != 0 {
		t.Fatalf("expected no open locations, got %d", e.open.Len())
	}
}

func TestRunFillsEveryCellOnce(t *testing.T) {
	e, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	checkBijection(t, e)

	stats := e.Stats()
	if stats.Placed() != 64 {
		t.Fatalf("expected 64 placements, got %+v", stats)
	}
	if stats.Seeds != 3 {
		t.Fatalf("expected 3 seeds, got %d", stats.Seeds)
	}
	if e.Remaining() != 0 || !e.Done() {
		t.Fatal("engine should report completion")
	}
	if err := e.Step(); err != nil {
		t.Fatalf("Step after completion should be a no-op, got %v", err)
	}
}

func TestVerifyRejectsUnfinishedRun(t *testing.T) {
	e, err := New(smallConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if err := e.Verify(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant on a partial grid, got %v", err)
	}
	for !e.Done() {
		if err := e.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if err := e.Verify(); err != nil {
		t.Fatalf("Verify after stepping to completion: %v", err)
	}
}

func TestRunScaleTwoEverySeedCount(t *testing.T) {
	for seeds := 1; seeds <= 63; seeds++ {
		cfg := smallConfig()
		cfg.NumSeeds = seeds
		cfg.Seed = int64(seeds)
		e, err := New(cfg)
		if err != nil {
			t.Fatalf("seeds=%d: New: %v", seeds, err)
		}
		if err := e.Run(); err != nil {
			t.Fatalf("seeds=%d: Run: %v", seeds, err)
		}
		checkBijection(t, e)
	}
}

func TestRunScaleThree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 3
	cfg.NumSeeds = 5
	cfg.Seed = 9
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	checkBijection(t, e)
	if e.Stats().Grown == 0 {
		t.Fatal("expected most colors to be placed by growth walks")
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func(seed int64) []colorspace.Base {
		cfg := smallConfig()
		cfg.Scale = 3
		cfg.Seed = seed
		e, err := New(cfg)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := e.Run(); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return append([]colorspace.Base(nil), e.Grid().Cells()...)
	}

	a := run(123)
	b := run(123)
	if !slices.Equal(a, b) {
		t.Fatal("identical configs should produce identical grids")
	}
	if slices.Equal(a, run(124)) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"zero seeds":      func(c *Config) { c.NumSeeds = 0 },
		"negative seeds":  func(c *Config) { c.NumSeeds = -2 },
		"all seeds":       func(c *Config) { c.NumSeeds = 64 },
		"scale one":       func(c *Config) { c.Scale = 1 },
		"zero cycle cap":  func(c *Config) { c.CycleCap = 0 },
		"scale too large": func(c *Config) { c.Scale = 17 },
	}
	for name, mutate := range cases {
		cfg := smallConfig()
		mutate(&cfg)
		if _, err := New(cfg); !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: expected ErrConfig, got %v", name, err)
		}
	}
}

func TestGrowFallsBackWhenWalkIsBlocked(t *testing.T) {
	cfg := smallConfig()
	cfg.NumSeeds = 1
	cfg.CycleCap = 1
	cfg.TurnRate = 0
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := e.Step(); err != nil {
		t.Fatalf("seed step: %v", err)
	}
	origin, ok := e.index.Get(e.space.Bases[0])
	if !ok {
		t.Fatal("seed color missing from index")
	}

	// Fill the seed's whole column with heading 0 so a straight walk along
	// the column sees only occupied cells within its budget of one lap.
	column := origin.X
	e.heading[e.grid.Index(origin.X, origin.Y)] = 0
	next := 1
	for y := 0; y < e.size; y++ {
		loc := core.Location{X: column, Y: y}
		if loc == origin {
			continue
		}
		if !e.open.Remove(loc) {
			t.Fatalf("expected %v to be open", loc)
		}
		if err := e.place(e.space.Bases[next], loc, 0); err != nil {
			t.Fatalf("place: %v", err)
		}
		next++
	}
	e.next = next

	before := e.Stats()
	if err := e.Step(); err != nil {
		t.Fatalf("blocked step: %v", err)
	}
	after := e.Stats()
	if after.Fallbacks != before.Fallbacks+1 {
		t.Fatalf("expected a fallback placement, stats went from %+v to %+v", before, after)
	}
	if got := after.WalkSteps - before.WalkSteps; got != cfg.CycleCap*e.size {
		t.Fatalf("expected the full walk budget of %d steps, used %d", cfg.CycleCap*e.size, got)
	}
	loc, ok := e.index.Get(e.space.Bases[next])
	if !ok {
		t.Fatal("fallback color was not placed")
	}
	if loc.X == column {
		t.Fatalf("fallback landed in the blocked column at %v", loc)
	}
	if e.open.Len() != e.size*e.size-e.size-1 {
		t.Fatalf("expected %d open cells, got %d", e.size*e.size-e.size-1, e.open.Len())
	}

	if err := e.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	checkBijection(t, e)
}
