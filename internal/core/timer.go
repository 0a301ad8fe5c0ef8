package core

import "time"

// DefaultInterval is the minimum spacing between logical ticks at 60 FPS.
const DefaultInterval = time.Second / 60

// Throttle caps how often logical ticks happen. Ticks that arrive less than
// one interval after the last accepted tick are skipped, not batched.
type Throttle struct {
	interval time.Duration
	now      time.Time
	then     time.Time
	delta    time.Duration
}

// NewThrottle constructs a Throttle with the given interval. Non-positive
// intervals fall back to DefaultInterval.
func NewThrottle(interval time.Duration) *Throttle {
	t := &Throttle{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the minimum tick spacing.
func (t *Throttle) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t.interval = interval
}

// Interval returns the minimum tick spacing.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Reset marks now as the time of the last accepted tick.
func (t *Throttle) Reset(now time.Time) {
	t.now = now
	t.then = now
	t.delta = 0
}

// Ready records a tick at now and reports whether it is more than one
// interval past the last accepted tick. Accepted ticks move the reference to
// now minus the remainder of delta, so the tick phase does not drift.
func (t *Throttle) Ready(now time.Time) bool {
	t.now = now
	t.delta = now.Sub(t.then)
	if t.delta <= t.interval {
		return false
	}
	t.then = now.Add(-(t.delta % t.interval))
	return true
}

// Delta returns the elapsed time measured by the last call to Ready.
func (t *Throttle) Delta() time.Duration { return t.delta }

// Then returns the time of the last accepted tick, phase-adjusted.
func (t *Throttle) Then() time.Time { return t.then }
