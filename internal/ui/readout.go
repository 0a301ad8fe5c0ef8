package ui

import (
	"fmt"

	"fractal-tree/internal/core"
)

// Readout keeps the last debug stats a tree reported.
type Readout struct {
	stats   core.Stats
	reports int
}

// Report implements core.DebugSink.
func (r *Readout) Report(s core.Stats) {
	r.stats = s
	r.reports++
}

// Stats returns the last report.
func (r *Readout) Stats() core.Stats { return r.stats }

// Reports returns how many reports arrived.
func (r *Readout) Reports() int { return r.reports }

// Text formats the readout one value per line.
func (r *Readout) Text() string {
	s := r.stats
	state := "done"
	if s.Running {
		state = "growing"
	}
	return fmt.Sprintf("count: %d\ncycle: %.2f\nangle: %.3f\nmultiplier: %.3f\nlength: %.1f\nleaves: %d\n%s (%d ticks)",
		s.Count, s.Cycle, s.Angle, s.Multiplier, s.Length, s.Leaves, state, s.Ticks)
}

var _ core.DebugSink = (*Readout)(nil)
