package render

import (
	"image/color"
	"math"
)

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// Identity is the identity matrix.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translation returns a matrix that moves points by (x, y).
func Translation(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Rotation returns a matrix that turns points by rad. With Y pointing down
// positive angles turn clockwise on screen.
func Rotation(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns m * c, so c is applied to a point before m.
func (m Affine) Mul(c Affine) Affine {
	return Affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// Apply maps the local point (x, y) through m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// State is everything Save captures.
type State struct {
	Matrix Affine
	Stroke color.RGBA
	Fill   color.RGBA
	Width  float64
}

// Context implements the transform and style half of core.Surface. Backends
// embed it and supply Size, SetSize, Clear, StrokeLine and FillRect.
type Context struct {
	cur   State
	stack []State
}

// NewContext returns a context with the identity transform, black stroke and
// fill and a one pixel line width.
func NewContext() Context {
	return Context{cur: State{
		Matrix: Identity,
		Stroke: color.RGBA{A: 0xff},
		Fill:   color.RGBA{A: 0xff},
		Width:  1,
	}}
}

// ResetTransform sets the current matrix to identity. Style and the save
// stack are left alone.
func (c *Context) ResetTransform() { c.cur.Matrix = Identity }

// Translate moves the local origin by (x, y) in local units.
func (c *Context) Translate(x, y float64) {
	c.cur.Matrix = c.cur.Matrix.Mul(Translation(x, y))
}

// Rotate turns the local axes by rad.
func (c *Context) Rotate(rad float64) {
	c.cur.Matrix = c.cur.Matrix.Mul(Rotation(rad))
}

// Save pushes the current state.
func (c *Context) Save() { c.stack = append(c.stack, c.cur) }

// Restore pops the most recently saved state. It is a no-op on an empty stack.
func (c *Context) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.cur = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

// SetStrokeColor sets the colour used by StrokeLine.
func (c *Context) SetStrokeColor(col color.Color) { c.cur.Stroke = toRGBA(col) }

// SetFillColor sets the colour used by FillRect.
func (c *Context) SetFillColor(col color.Color) { c.cur.Fill = toRGBA(col) }

// SetLineWidth sets the stroke width in pixels.
func (c *Context) SetLineWidth(w float64) { c.cur.Width = w }

// Current returns the active state.
func (c *Context) Current() State { return c.cur }

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// Apply maps a local point to surface coordinates.
func (c *Context) Apply(x, y float64) (float64, float64) { return c.cur.Matrix.Apply(x, y) }

func toRGBA(col color.Color) color.RGBA {
	if col == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(col).(color.RGBA)
}
