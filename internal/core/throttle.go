package core

import "time"

// Throttle gates periodic work, such as progress reports, to a steady rate
// while a long loop runs.
type Throttle struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewThrottle constructs a Throttle that fires at most perSecond times a
// second.
func NewThrottle(perSecond int) *Throttle {
	t := &Throttle{now: time.Now}
	t.SetRate(perSecond)
	return t
}

// SetRate changes the firing rate. Non-positive rates fall back to once a
// second.
func (t *Throttle) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 1
	}
	t.interval = time.Second / time.Duration(perSecond)
}

// Ready reports whether enough time has passed since the last firing.
func (t *Throttle) Ready() bool {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
	}
	t.accumulator += now.Sub(t.last)
	t.last = now
	if t.accumulator >= t.interval {
		t.accumulator = 0
		return true
	}
	return false
}
