// Package simulate runs the growth animation without a display, driving the
// frame queue from a virtual clock at a fixed refresh rate.
package simulate

import (
	"fmt"
	"time"

	"fractal-tree/internal/core"
	"fractal-tree/internal/render"
	"fractal-tree/internal/tree"

	"go.uber.org/zap"
)

// Options configures a headless run.
type Options struct {
	Width, Height int
	// RefreshHz is the rate at which the virtual display repaints.
	RefreshHz int
	// MaxFrames bounds the run when growth never completes.
	MaxFrames int
	Tree      tree.Config
}

// DefaultOptions mirrors a 60 Hz 800x600 window.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, RefreshHz: 60, MaxFrames: 10000, Tree: tree.DefaultConfig()}
}

// Sample is one redraw observed during the run.
type Sample struct {
	Frame    int
	Tick     int
	Cycle    float64
	Calls    int
	Segments int
	Leaves   int
}

// Report summarises a run.
type Report struct {
	Frames    int
	Ticks     int
	Completed bool
	// Elapsed is virtual time from the first repaint to the last.
	Elapsed time.Duration
	Samples []Sample
}

// Segments returns the segment count of each redraw, for plotting.
func (r *Report) Segments() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Segments)
	}
	return out
}

// Run grows one tree to completion and reports every redraw.
func Run(opts Options, logger *zap.Logger) (*Report, error) {
	if opts.RefreshHz <= 0 {
		return nil, fmt.Errorf("refresh rate %d must be positive", opts.RefreshHz)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	period := time.Second / time.Duration(opts.RefreshHz)
	start := time.Unix(0, 0)
	now := start
	frame := 0

	rep := &Report{}
	surface := render.NewRecorder(opts.Width, opts.Height)
	queue := core.NewFrameQueue()
	sink := core.DebugFunc(func(s core.Stats) {
		rep.Samples = append(rep.Samples, Sample{
			Frame:    frame,
			Tick:     s.Ticks,
			Cycle:    s.Cycle,
			Calls:    s.Count,
			Segments: s.Segments,
			Leaves:   s.Leaves,
		})
	})

	t, err := tree.New(surface, queue,
		tree.WithConfig(opts.Tree),
		tree.WithLogger(logger),
		tree.WithDebug(sink),
		tree.WithClock(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}

	for frame = 1; frame <= opts.MaxFrames && queue.Pending() > 0; frame++ {
		now = now.Add(period)
		queue.Flush(now)
	}
	rep.Frames = frame - 1
	rep.Ticks = t.Stats().Ticks
	rep.Completed = t.State() == tree.Completed
	t.Stop()
	rep.Elapsed = now.Sub(start)
	logger.Info("simulation finished",
		zap.Int("refresh_hz", opts.RefreshHz),
		zap.Int("frames", rep.Frames),
		zap.Int("ticks", rep.Ticks),
		zap.Bool("completed", rep.Completed),
		zap.Duration("elapsed", rep.Elapsed))
	return rep, nil
}
