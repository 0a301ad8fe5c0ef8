package tree

import (
	"fractal-tree/internal/core"
	"fractal-tree/internal/render"

	"go.uber.org/zap"
)

const (
	// LeafThreshold is the branch length at or below which recursion stops
	// and a leaf is drawn.
	LeafThreshold = 7.0
	// MaxLineWidth is the stroke width of the trunk.
	MaxLineWidth = 10.0
	// MaxSafeMultiplier is the largest multiplier the engine recurses with.
	MaxSafeMultiplier = 0.9
	// MaxDepth bounds recursion when a large surface meets a multiplier near
	// MaxSafeMultiplier. Calls at this depth draw a leaf.
	MaxDepth = 16
)

// Engine grows the tree onto a surface by recursing through branch calls.
// The surface's transform stack carries position and heading between calls.
type Engine struct {
	surface core.Surface
	params  *core.Params
	logger  *zap.Logger

	frame      core.Frame
	initial    float64
	multiplier float64
	clamped    bool
}

// NewEngine returns an engine that reads params on every draw.
func NewEngine(surface core.Surface, params *core.Params, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{surface: surface, params: params, logger: logger}
}

// Draw resets the transform, clears the surface and grows the tree from the
// bottom centre at the current length.
func (e *Engine) Draw() {
	s := e.surface
	size := s.Size()
	s.ResetTransform()
	s.Clear()
	s.Translate(float64(size.W)/2, float64(size.H))
	e.Grow(e.params.Length)
}

// Grow records a fresh frame by recursing from length in the surface's
// current transform. Non-positive lengths draw nothing.
func (e *Engine) Grow(length float64) {
	e.frame.Reset()
	e.initial = length
	e.multiplier = e.safeMultiplier()
	if length <= 0 {
		return
	}
	e.branch(length, 0)
}

// Frame returns a copy of the primitives emitted by the last Grow.
func (e *Engine) Frame() core.Frame {
	return core.Frame{
		Segments: append([]core.Segment(nil), e.frame.Segments...),
		Leaves:   append([]core.Leaf(nil), e.frame.Leaves...),
		Calls:    e.frame.Calls,
	}
}

// Calls returns the number of branch calls made by the last Grow.
func (e *Engine) Calls() int { return e.frame.Calls }

func (e *Engine) branch(length float64, depth int) {
	e.frame.Calls++
	s := e.surface
	terminal := length <= LeafThreshold || depth >= MaxDepth

	if length <= LeafThreshold {
		s.SetStrokeColor(render.TipColor)
	} else {
		s.SetStrokeColor(render.TrunkColor)
	}
	s.SetLineWidth(length / e.initial * MaxLineWidth)
	e.segment(length, depth)
	s.Translate(0, -length)

	if terminal {
		e.frame.Leaves = append(e.frame.Leaves, core.Leaf{X: 0, Y: -length, Size: render.LeafSize, Depth: depth})
		render.DrawLeaf(s, 0, -length)
		return
	}

	child := length * e.multiplier

	s.Save()
	s.Rotate(e.params.Angle * e.params.Random.A)
	e.segment(child, depth+1)
	e.branch(child, depth+1)
	s.Restore()

	s.Rotate(-e.params.Angle * e.params.Random.B)
	e.segment(child, depth+1)
	e.branch(child, depth+1)
}

func (e *Engine) segment(length float64, depth int) {
	e.frame.Segments = append(e.frame.Segments, core.Segment{X: 0, Y: -length, Length: length, Depth: depth})
	render.DrawSegment(e.surface, 0, -length)
}

func (e *Engine) safeMultiplier() float64 {
	m := e.params.Multiplier
	clamped := false
	switch {
	case m > MaxSafeMultiplier:
		m = MaxSafeMultiplier
		clamped = true
	case m < 0:
		m = 0
		clamped = true
	}
	if clamped && !e.clamped {
		e.logger.Warn("multiplier clamped",
			zap.Float64("requested", e.params.Multiplier),
			zap.Float64("used", m))
	}
	e.clamped = clamped
	return m
}

// Depth returns the recursion level at which branch(initial) reaches its
// leaves for the given multiplier. The tree then holds 2^Depth leaves and
// 2^Depth - 1 non-terminal calls.
func Depth(initial, multiplier float64) int {
	if multiplier > MaxSafeMultiplier {
		multiplier = MaxSafeMultiplier
	}
	d := 0
	for l := initial; l > LeafThreshold && d < MaxDepth; l *= multiplier {
		d++
	}
	return d
}
