package tree

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fractal-tree/internal/core"

	"go.uber.org/zap"
)

// ErrSurfaceUnavailable is returned when a tree is created without a usable
// drawing surface.
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Tree is the animated fractal tree component. It owns the parameter set and
// wires the engine, the animation driver and the input controller to one
// surface and one frame scheduler.
type Tree struct {
	params core.Params
	cfg    Config

	surface core.Surface
	engine  *Engine
	driver  *Driver
	ctrl    *Controller

	debug  core.DebugSink
	logger *zap.Logger
}

type options struct {
	cfg    Config
	logger *zap.Logger
	debug  core.DebugSink
	rng    *core.RNG
	clock  func() time.Time
}

// Option customises New.
type Option func(*options)

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option { return func(o *options) { o.cfg = cfg } }

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.logger = l } }

// WithDebug sets where debug readouts go after each redraw.
func WithDebug(d core.DebugSink) Option { return func(o *options) { o.debug = d } }

// WithRNG overrides the random source for the branch factors.
func WithRNG(r *core.RNG) Option { return func(o *options) { o.rng = r } }

// WithClock overrides time.Now for the animation throttle's reference time.
func WithClock(clock func() time.Time) Option { return func(o *options) { o.clock = clock } }

// New builds a tree on surface, draws it once and starts the growth
// animation on scheduler.
func New(surface core.Surface, scheduler core.FrameScheduler, opts ...Option) (*Tree, error) {
	o := options{cfg: DefaultConfig(), clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if surface == nil || scheduler == nil {
		return nil, ErrSurfaceUnavailable
	}
	size := surface.Size()
	if size.Empty() {
		return nil, fmt.Errorf("%w: size %dx%d", ErrSurfaceUnavailable, size.W, size.H)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.rng == nil {
		seed := o.cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = core.NewRNG(seed)
	}
	logger := o.logger.Named("tree")

	t := &Tree{cfg: o.cfg, surface: surface, debug: o.debug, logger: logger}
	maxStart := float64(size.H) * o.cfg.StartLengthRatio
	t.params = core.Params{
		Angle:          o.cfg.MaxAngle(),
		MaxAngle:       o.cfg.MaxAngle(),
		Multiplier:     o.cfg.MaxMultiplier,
		MaxMultiplier:  o.cfg.MaxMultiplier,
		Length:         maxStart,
		MaxStartLength: maxStart,
		Cycle:          o.cfg.CycleStart,
		Random:         o.rng.Factors(),
	}
	if err := t.params.Validate(); err != nil {
		return nil, err
	}

	t.engine = NewEngine(surface, &t.params, logger)
	t.driver = NewDriver(&t.params, scheduler, t.Redraw, DriverOptions{
		Interval:   o.cfg.Interval(),
		CycleStart: o.cfg.CycleStart,
		CycleStep:  o.cfg.CycleStep,
		Linger:     o.cfg.LingerAfterComplete,
		Clock:      o.clock,
		Logger:     logger,
	})
	t.ctrl = &Controller{
		params:  &t.params,
		surface: surface,
		driver:  t.driver,
		rng:     o.rng,
		redraw:  t.Redraw,
		ratio:   o.cfg.StartLengthRatio,
		logger:  logger,
	}

	logger.Info("tree ready",
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Float64("max_angle", t.params.MaxAngle),
		zap.Float64("max_multiplier", t.params.MaxMultiplier),
		zap.Duration("interval", t.driver.Interval()))

	t.driver.Start()
	t.Redraw()
	return t, nil
}

// Redraw clears the surface, grows the tree from the current parameters and
// publishes a debug readout.
func (t *Tree) Redraw() {
	t.engine.Draw()
	if t.debug != nil {
		t.debug.Report(t.Stats())
	}
}

// Stats returns the current debug readout.
func (t *Tree) Stats() core.Stats {
	f := &t.engine.frame
	return core.Stats{
		Count:      f.Calls,
		Segments:   len(f.Segments),
		Leaves:     len(f.Leaves),
		Cycle:      t.params.Cycle,
		Angle:      t.params.Angle,
		Multiplier: t.params.Multiplier,
		Length:     t.params.Length,
		Ticks:      t.driver.Ticks(),
		Running:    t.driver.State() == Running,
	}
}

// Resize handles a host layout change.
func (t *Tree) Resize(w, h int) { t.ctrl.Resize(w, h) }

// SetAngle handles the angle slider, v in [0, 1].
func (t *Tree) SetAngle(v float64) { t.ctrl.SetAngle(v) }

// SetMultiplier handles the multiplier slider, v in [0, 1].
func (t *Tree) SetMultiplier(v float64) { t.ctrl.SetMultiplier(v) }

// PointerMove handles a pointer move in surface coordinates.
func (t *Tree) PointerMove(x, y float64) { t.ctrl.PointerMove(x, y) }

// Regenerate re-rolls the random factors and restarts the animation.
func (t *Tree) Regenerate() { t.ctrl.Regenerate() }

// Stop cancels the animation loop.
func (t *Tree) Stop() { t.driver.Stop() }

// Params returns a copy of the live parameter set.
func (t *Tree) Params() core.Params { return t.params }

// Frame returns the primitives emitted by the last redraw.
func (t *Tree) Frame() core.Frame { return t.engine.Frame() }

// State returns the animation state.
func (t *Tree) State() State { return t.driver.State() }

// Parameters implements the HUD's snapshot provider.
func (t *Tree) Parameters() core.ParameterSnapshot {
	p := t.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Sliders",
			Params: []core.Parameter{
				floatParam("angle", "Angle", ratio(p.Angle, p.MaxAngle)),
				floatParam("multiplier", "Multiplier", ratio(p.Multiplier, p.MaxMultiplier)),
			},
		},
		{
			Name: "Tree",
			Params: []core.Parameter{
				intParam("count", "Count", t.engine.Calls()),
				floatParam("cycle", "Cycle", p.Cycle),
				floatParam("angle_rad", "Angle (rad)", p.Angle),
				floatParam("multiplier_value", "Multiplier", p.Multiplier),
				floatParam("length", "Length", p.Length),
			},
		},
		{
			Name: "Animation",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: t.driver.State().String()},
				intParam("ticks", "Ticks", t.driver.Ticks()),
				floatParam("factor_a", "Factor A", p.Random.A),
				floatParam("factor_b", "Factor B", p.Random.B),
			},
		},
	}}
}

// ParameterControls describes the two sliders.
func (t *Tree) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "angle", Label: "Angle", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "multiplier", Label: "Multiplier", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter routes slider updates by key.
func (t *Tree) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "angle":
		t.SetAngle(value)
	case "multiplier":
		t.SetMultiplier(value)
	default:
		return false
	}
	return true
}

func ratio(v, bound float64) float64 {
	if bound == 0 {
		return 0
	}
	return v / bound
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

var (
	_ core.ParameterControlsProvider = (*Tree)(nil)
	_ core.FloatParameterSetter      = (*Tree)(nil)
)
