package render

import (
	"image/color"
	"math"
	"strings"

	"fractal-tree/internal/core"
)

// Braille patterns: 2x4 dots per cell
//
//	1 4
//	2 5
//	3 6
//	7 8
//
// Unicode offset 0x2800.
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blankCell = 0x2800

// Canvas is a terminal surface made of Braille cells. One cell holds 2x4
// sub-pixels; surface coordinates are in sub-pixels. Each cell remembers
// the colour of the last dot set in it.
type Canvas struct {
	Context
	cols, rows int
	grid       [][]rune
	colors     [][]color.RGBA
}

// NewCanvas allocates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{Context: NewContext()}
	c.resize(cols, rows)
	return c
}

// Cells returns the canvas size in character cells.
func (c *Canvas) Cells() (cols, rows int) { return c.cols, c.rows }

// Size returns the canvas size in sub-pixels.
func (c *Canvas) Size() core.Size { return core.Size{W: c.cols * 2, H: c.rows * 4} }

// SetSize resizes the canvas to hold at least w x h sub-pixels.
func (c *Canvas) SetSize(w, h int) {
	c.resize((w+1)/2, (h+3)/4)
}

func (c *Canvas) resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.grid = make([][]rune, rows)
	c.colors = make([][]color.RGBA, rows)
	for i := range c.grid {
		c.grid[i] = make([]rune, cols)
		c.colors[i] = make([]color.RGBA, cols)
	}
	c.Clear()
}

// Set lights the sub-pixel (x, y) in col.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cx >= c.cols || cy >= c.rows {
		return
	}
	c.grid[cy][cx] |= pixelMap[y%4][x%2]
	c.colors[cy][cx] = col
}

// Lit reports whether the sub-pixel (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	cx, cy := x/2, y/4
	if cx >= c.cols || cy >= c.rows {
		return false
	}
	return c.grid[cy][cx]&pixelMap[y%4][x%2] != 0
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = blankCell
			c.colors[i][j] = color.RGBA{}
		}
	}
}

// StrokeLine draws a transformed line using Bresenham's algorithm. Width is
// ignored; a Braille dot is the thinnest and thickest line available.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	st := c.Current()
	ax, ay := st.Matrix.Apply(x0, y0)
	bx, by := st.Matrix.Apply(x1, y1)
	c.line(round(ax), round(ay), round(bx), round(by), st.Stroke)
}

// FillRect lights every sub-pixel inside the bounding box of the
// transformed rectangle.
func (c *Canvas) FillRect(x, y, w, h float64) {
	st := c.Current()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := st.Matrix.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	for py := round(minY); py <= round(maxY); py++ {
		for px := round(minX); px <= round(maxX); px++ {
			c.Set(px, py, st.Fill)
		}
	}
}

func (c *Canvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Row returns the runes of row y.
func (c *Canvas) Row(y int) []rune { return c.grid[y] }

// CellColor returns the colour last drawn into cell (x, y).
func (c *Canvas) CellColor(x, y int) color.RGBA { return c.colors[y][x] }

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func round(v float64) int { return int(math.Round(v)) }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

var _ core.Surface = (*Canvas)(nil)
