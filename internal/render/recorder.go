package render

import (
	"image/color"

	"fractal-tree/internal/core"
)

// OpKind identifies a recorded primitive.
type OpKind uint8

const (
	OpLine OpKind = iota
	OpRect
)

// Op is one primitive in surface coordinates. Lines use X0..Y1; rects use
// X0, Y0 as the transformed corner and X1, Y1 as width and height.
type Op struct {
	Kind  OpKind
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
	Width float64
	Color color.RGBA
}

// Recorder is a surface that keeps the primitives currently visible on it.
// Clear forgets them, the same way clearing a canvas wipes its pixels.
type Recorder struct {
	Context
	size   core.Size
	ops    []Op
	clears int
}

// NewRecorder returns a recorder of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{Context: NewContext(), size: core.Size{W: w, H: h}}
}

// Size returns the surface dimensions.
func (r *Recorder) Size() core.Size { return r.size }

// SetSize changes the surface dimensions and wipes it.
func (r *Recorder) SetSize(w, h int) {
	r.size = core.Size{W: w, H: h}
	r.ops = r.ops[:0]
}

// Clear wipes the recorded primitives.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.clears++
}

// StrokeLine records a line in surface coordinates.
func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64) {
	st := r.Current()
	ax, ay := st.Matrix.Apply(x0, y0)
	bx, by := st.Matrix.Apply(x1, y1)
	r.ops = append(r.ops, Op{Kind: OpLine, X0: ax, Y0: ay, X1: bx, Y1: by, Width: st.Width, Color: st.Stroke})
}

// FillRect records a filled rectangle anchored at its transformed corner.
func (r *Recorder) FillRect(x, y, w, h float64) {
	st := r.Current()
	ax, ay := st.Matrix.Apply(x, y)
	r.ops = append(r.ops, Op{Kind: OpRect, X0: ax, Y0: ay, X1: w, Y1: h, Color: st.Fill})
}

// Ops returns a copy of the visible primitives in drawing order.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Count returns how many primitives of kind are visible.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Clears returns how many times the surface was cleared.
func (r *Recorder) Clears() int { return r.clears }

var _ core.Surface = (*Recorder)(nil)
