package tree

import (
	"time"

	"fractal-tree/internal/core"

	"go.uber.org/zap"
)

// State is the animation driver's lifecycle state.
type State uint8

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// DriverOptions configures a Driver.
type DriverOptions struct {
	Interval   time.Duration
	CycleStart float64
	CycleStep  float64
	// Linger keeps the frame request armed for one more qualifying tick
	// after the cycle passes 1.
	Linger bool
	Clock  func() time.Time
	Logger *zap.Logger
}

// Driver advances the growth cycle on throttled frame callbacks and redraws
// the tree on every qualifying tick.
type Driver struct {
	scheduler core.FrameScheduler
	throttle  *core.Throttle
	params    *core.Params
	redraw    func()
	logger    *zap.Logger

	start, step float64
	linger      bool

	handle   core.FrameHandle
	armed    bool
	state    State
	steps    int
	ticks    int
	lingered bool
}

// NewDriver returns an idle driver. The throttle reference time is taken from
// opts.Clock at construction.
func NewDriver(params *core.Params, scheduler core.FrameScheduler, redraw func(), opts DriverOptions) *Driver {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CycleStep <= 0 {
		opts.CycleStep = 0.01
	}
	d := &Driver{
		scheduler: scheduler,
		throttle:  core.NewThrottle(opts.Interval),
		params:    params,
		redraw:    redraw,
		logger:    opts.Logger,
		start:     opts.CycleStart,
		step:      opts.CycleStep,
		linger:    opts.Linger,
	}
	d.throttle.Reset(opts.Clock())
	return d
}

// Start resets the cycle and (re)arms the frame loop. Any request already
// pending is cancelled first so only one loop ever runs.
func (d *Driver) Start() {
	d.cancel()
	d.steps = 0
	d.ticks = 0
	d.lingered = false
	d.params.Cycle = d.start
	d.state = Running
	d.arm()
}

// Stop cancels the pending frame and returns the driver to Idle.
func (d *Driver) Stop() {
	d.cancel()
	d.state = Idle
}

// State returns the lifecycle state.
func (d *Driver) State() State { return d.state }

// Ticks returns the number of qualifying ticks since the last Start.
func (d *Driver) Ticks() int { return d.ticks }

// Armed reports whether a frame callback is pending.
func (d *Driver) Armed() bool { return d.armed }

// Interval returns the minimum spacing between qualifying ticks.
func (d *Driver) Interval() time.Duration { return d.throttle.Interval() }

func (d *Driver) arm() {
	d.handle = d.scheduler.RequestFrame(d.tick)
	d.armed = true
}

func (d *Driver) cancel() {
	if !d.armed {
		return
	}
	d.scheduler.CancelFrame(d.handle)
	d.armed = false
}

func (d *Driver) tick(now time.Time) {
	d.armed = false
	d.arm()
	if !d.throttle.Ready(now) {
		return
	}
	d.ticks++

	cycle := d.params.Cycle
	if cycle > 1 {
		if d.linger && !d.lingered {
			d.lingered = true
		} else {
			d.cancel()
			d.state = Completed
			d.logger.Info("growth complete",
				zap.Int("ticks", d.ticks),
				zap.Float64("cycle", cycle))
		}
	}

	d.redraw()
	d.params.Derive(cycle)
	d.steps++
	d.params.Cycle = d.start + float64(d.steps)*d.step
}
