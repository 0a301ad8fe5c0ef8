package render

import (
	"image/color"
	"strings"
	"testing"
)

func TestCanvasSizeInSubPixels(t *testing.T) {
	c := NewCanvas(10, 5)
	if s := c.Size(); s.W != 20 || s.H != 20 {
		t.Fatalf("size = %+v, want 20x20", s)
	}
	c.SetSize(7, 9)
	cols, rows := c.Cells()
	if cols != 4 || rows != 3 {
		t.Fatalf("cells = %dx%d, want 4x3", cols, rows)
	}
}

func TestCanvasStrokeLineFollowsTransform(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Translate(10, 39)
	c.SetStrokeColor(TipColor)
	c.StrokeLine(0, 0, 0, -8)

	for y := 31; y <= 39; y++ {
		if !c.Lit(10, y) {
			t.Fatalf("expected (10,%d) to be lit", y)
		}
	}
	if c.Lit(11, 35) {
		t.Fatal("vertical line leaked sideways")
	}
	if got := c.CellColor(5, 8); got != TipColor {
		t.Fatalf("cell colour = %v, want %v", got, TipColor)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, color.RGBA{A: 255})
	c.Clear()
	if strings.TrimRight(c.String(), "\n") != string([]rune{blankCell, blankCell}) {
		t.Fatalf("unexpected canvas after clear: %q", c.String())
	}
}
