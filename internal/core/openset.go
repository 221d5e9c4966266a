package core

// IntSource draws uniform integers in [0, n).
type IntSource interface {
	IntN(n int) int
}

// OpenSet tracks the grid locations that are still unfilled. Members live in a
// dense slice; pos maps a location's linear index to its slot in members, or
// -1 when absent. Both removals swap the victim with the last member and
// truncate, so they run in O(1).
type OpenSet struct {
	size    Size
	members []Location
	pos     []int32
}

// NewOpenSet returns a set holding every location of a w*h grid in row-major
// order.
func NewOpenSet(w, h int) *OpenSet {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s := &OpenSet{
		size:    Size{W: w, H: h},
		members: make([]Location, 0, w*h),
		pos:     make([]int32, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.pos[y*w+x] = int32(len(s.members))
			s.members = append(s.members, Location{X: x, Y: y})
		}
	}
	return s
}

// Len returns the number of open locations.
func (s *OpenSet) Len() int { return len(s.members) }

// Contains reports whether loc is still open.
func (s *OpenSet) Contains(loc Location) bool {
	if !loc.In(s.size) {
		return false
	}
	return s.pos[loc.Y*s.size.W+loc.X] >= 0
}

// RemoveRandom removes and returns a member chosen uniformly at random. The
// boolean is false when the set is empty.
func (s *OpenSet) RemoveRandom(rng IntSource) (Location, bool) {
	if len(s.members) == 0 {
		return Location{}, false
	}
	i := rng.IntN(len(s.members))
	loc := s.members[i]
	s.removeAt(i)
	return loc, true
}

// Remove deletes loc from the set and reports whether it was present.
func (s *OpenSet) Remove(loc Location) bool {
	if !s.Contains(loc) {
		return false
	}
	s.removeAt(int(s.pos[loc.Y*s.size.W+loc.X]))
	return true
}

func (s *OpenSet) removeAt(i int) {
	last := len(s.members) - 1
	victim := s.members[i]
	moved := s.members[last]
	s.members[i] = moved
	s.pos[moved.Y*s.size.W+moved.X] = int32(i)
	s.pos[victim.Y*s.size.W+victim.X] = -1
	s.members = s.members[:last]
}
