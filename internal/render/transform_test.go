package render

import (
	"image/color"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestContextTranslateThenRotate(t *testing.T) {
	ctx := NewContext()
	ctx.Translate(100, 200)
	ctx.Rotate(math.Pi / 2)

	// A point straight "up" in local space ends up to the right on screen
	// after a clockwise quarter turn.
	x, y := ctx.Apply(0, -10)
	if !near(x, 110) || !near(y, 200) {
		t.Fatalf("apply(0,-10) = (%v, %v), want (110, 200)", x, y)
	}
}

func TestContextSaveRestoreIncludesStyle(t *testing.T) {
	ctx := NewContext()
	ctx.SetStrokeColor(color.RGBA{R: 1, A: 255})
	ctx.SetLineWidth(4)
	ctx.Translate(5, 5)
	ctx.Save()

	ctx.Rotate(1)
	ctx.SetStrokeColor(color.RGBA{G: 2, A: 255})
	ctx.SetLineWidth(1)
	ctx.Restore()

	st := ctx.Current()
	if st.Stroke != (color.RGBA{R: 1, A: 255}) || st.Width != 4 {
		t.Fatalf("restore did not bring back style: %+v", st)
	}
	if st.Matrix != Translation(5, 5) {
		t.Fatalf("restore did not bring back transform: %v", st.Matrix)
	}
	if ctx.Depth() != 0 {
		t.Fatalf("stack depth = %d after balanced save/restore", ctx.Depth())
	}
	ctx.Restore()
	if ctx.Current().Matrix != Translation(5, 5) {
		t.Fatal("restore on an empty stack must be a no-op")
	}
}

func TestResetTransformKeepsStack(t *testing.T) {
	ctx := NewContext()
	ctx.Translate(3, 4)
	ctx.Save()
	ctx.ResetTransform()
	if ctx.Current().Matrix != Identity {
		t.Fatal("expected identity after reset")
	}
	ctx.Restore()
	if ctx.Current().Matrix != Translation(3, 4) {
		t.Fatal("reset must not drop saved states")
	}
}
