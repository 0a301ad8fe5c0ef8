package core

import "image/color"

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Surface is a rectangular drawing target with an affine transform stack.
// Save and Restore snapshot the transform together with the stroke colour,
// fill colour and line width.
type Surface interface {
	Size() Size
	SetSize(w, h int)

	ResetTransform()
	Translate(x, y float64)
	Rotate(rad float64)
	Save()
	Restore()

	Clear()
	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(w float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillRect(x, y, w, h float64)
}

// Segment is one branch emitted by the recursion, in the local coordinates
// of the transform that was current when it was drawn.
type Segment struct {
	X      float64
	Y      float64
	Length float64
	Depth  int
}

// Leaf is the mark emitted where the recursion bottoms out.
type Leaf struct {
	X     float64
	Y     float64
	Size  float64
	Depth int
}

// Frame holds the primitives emitted by a single redraw.
type Frame struct {
	Segments []Segment
	Leaves   []Leaf
	Calls    int
}

// Reset empties the frame while keeping its backing storage.
func (f *Frame) Reset() {
	f.Segments = f.Segments[:0]
	f.Leaves = f.Leaves[:0]
	f.Calls = 0
}

// Stats is the debug readout published after every redraw.
type Stats struct {
	Count      int
	Segments   int
	Leaves     int
	Cycle      float64
	Angle      float64
	Multiplier float64
	Length     float64
	Ticks      int
	Running    bool
}

// DebugSink receives debug readouts. Hosts inject one at construction.
type DebugSink interface {
	Report(Stats)
}

// DebugFunc adapts a plain function to DebugSink.
type DebugFunc func(Stats)

// Report calls f.
func (f DebugFunc) Report(s Stats) { f(s) }
