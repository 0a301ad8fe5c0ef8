package tree

import (
	"math"
	"testing"

	"fractal-tree/internal/core"
	"fractal-tree/internal/render"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(multiplier, angle float64) (*Engine, *core.Params, *render.Recorder) {
	rec := render.NewRecorder(400, 400)
	p := &core.Params{
		Angle:         angle,
		MaxAngle:      angle,
		Multiplier:    multiplier,
		MaxMultiplier: multiplier,
		Random:        core.RandomFactors{A: 1, B: 1},
	}
	return NewEngine(rec, p, nil), p, rec
}

func TestBranchAtThresholdDrawsSingleLeaf(t *testing.T) {
	for _, length := range []float64{0.5, 3, 6.99, LeafThreshold} {
		e, _, rec := newTestEngine(0.67, math.Pi/4)
		e.Grow(length)
		f := e.Frame()
		if f.Calls != 1 {
			t.Fatalf("len %v: %d branch calls, want 1", length, f.Calls)
		}
		if len(f.Leaves) != 1 || len(f.Segments) != 1 {
			t.Fatalf("len %v: %d leaves / %d segments, want 1 / 1", length, len(f.Leaves), len(f.Segments))
		}
		if rec.Count(render.OpRect) != 1 {
			t.Fatalf("len %v: %d leaf marks drawn, want 1", length, rec.Count(render.OpRect))
		}
	}
}

func TestBranchAboveThresholdEmitsTwoChildren(t *testing.T) {
	e, _, _ := newTestEngine(0.5, math.Pi/4)
	e.Grow(8)
	f := e.Frame()

	// One call for 8, one for each child of length 4.
	if f.Calls != 3 {
		t.Fatalf("branch calls = %d, want 3", f.Calls)
	}
	want := []float64{8, 4, 4, 4, 4}
	if len(f.Segments) != len(want) {
		t.Fatalf("segments = %d, want %d", len(f.Segments), len(want))
	}
	for i, w := range want {
		if f.Segments[i].Length != w {
			t.Fatalf("segment %d length = %v, want %v", i, f.Segments[i].Length, w)
		}
	}
	if len(f.Leaves) != 2 {
		t.Fatalf("leaves = %d, want 2", len(f.Leaves))
	}
}

func TestGrowthScenario(t *testing.T) {
	e, _, _ := newTestEngine(0.67, math.Pi/4)
	e.Grow(100)
	f := e.Frame()

	if d := Depth(100, 0.67); d != 7 {
		t.Fatalf("depth = %d, want 7", d)
	}
	if len(f.Leaves) != 128 {
		t.Fatalf("leaves = %d, want 128", len(f.Leaves))
	}
	if nonTerminal := f.Calls - len(f.Leaves); nonTerminal != 127 {
		t.Fatalf("non-terminal calls = %d, want 127", nonTerminal)
	}
	if f.Calls != 255 {
		t.Fatalf("calls = %d, want 255", f.Calls)
	}
	if len(f.Segments) != 3*127+128 {
		t.Fatalf("segments = %d, want %d", len(f.Segments), 3*127+128)
	}
}

func TestRecursionTerminatesWithPowerOfTwoLeaves(t *testing.T) {
	for _, m := range []float64{0.05, 0.3, 0.5, 0.67, 0.75} {
		for _, length := range []float64{1, 7, 7.5, 50, 120, 200} {
			e, _, _ := newTestEngine(m, math.Pi/3)
			e.Grow(length)
			f := e.Frame()
			d := Depth(length, m)
			if len(f.Leaves) != 1<<d {
				t.Fatalf("m=%v len=%v: leaves = %d, want 2^%d", m, length, len(f.Leaves), d)
			}
			if f.Calls != 1<<(d+1)-1 {
				t.Fatalf("m=%v len=%v: calls = %d, want %d", m, length, f.Calls, 1<<(d+1)-1)
			}
		}
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	e, p, rec := newTestEngine(0.67, math.Pi/4)
	p.Random = core.RandomFactors{A: 0.31, B: 0.77}
	p.Length = 90

	e.Draw()
	firstFrame, firstOps := e.Frame(), rec.Ops()
	e.Draw()
	secondFrame, secondOps := e.Frame(), rec.Ops()

	if diff := cmp.Diff(firstFrame, secondFrame); diff != "" {
		t.Fatalf("frame changed between identical redraws (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(firstOps, secondOps); diff != "" {
		t.Fatalf("drawn primitives changed between identical redraws (-first +second):\n%s", diff)
	}
	if rec.Clears() != 2 {
		t.Fatalf("clears = %d, want one per redraw", rec.Clears())
	}
}

func TestDrawStartsAtBottomCentreWithTaperedWidth(t *testing.T) {
	e, p, rec := newTestEngine(0.67, math.Pi/4)
	p.Length = 100
	e.Draw()

	ops := rec.Ops()
	trunk := ops[0]
	if trunk.X0 != 200 || trunk.Y0 != 400 || trunk.Y1 != 300 {
		t.Fatalf("trunk = %+v, want (200,400)->(200,300)", trunk)
	}
	if trunk.Width != MaxLineWidth || trunk.Color != render.TrunkColor {
		t.Fatalf("trunk style = %v/%v", trunk.Width, trunk.Color)
	}
	for _, op := range ops {
		if op.Kind == render.OpLine && op.Width > MaxLineWidth {
			t.Fatalf("line wider than trunk: %+v", op)
		}
	}
	last := ops[len(ops)-2]
	if last.Kind != render.OpLine || last.Color != render.TipColor {
		t.Fatalf("last segment before a leaf should use the tip colour: %+v", last)
	}
}

func TestSecondChildBranchesFromPivot(t *testing.T) {
	e, p, rec := newTestEngine(0.5, math.Pi/2)
	p.Length = 20
	e.Draw()

	// Trunk tip sits at (200, 380). Both children and each child's own
	// first segment start there.
	fromPivot := 0
	for _, op := range rec.Ops() {
		if op.Kind == render.OpLine && math.Abs(op.X0-200) < 1e-9 && math.Abs(op.Y0-380) < 1e-9 {
			fromPivot++
		}
	}
	if fromPivot != 4 {
		t.Fatalf("lines starting at the pivot = %d, want 4", fromPivot)
	}
}

func TestUnsafeMultiplierIsClamped(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	rec := render.NewRecorder(100, 100)
	p := &core.Params{Angle: 0.5, Multiplier: 1.5, Random: core.RandomFactors{A: 1, B: 1}}
	e := NewEngine(rec, p, zap.New(obsCore))

	e.Grow(20)
	e.Grow(20)

	if want := Depth(20, 1.5); len(e.Frame().Leaves) != 1<<want {
		t.Fatalf("leaves = %d, want 2^%d", len(e.Frame().Leaves), want)
	}
	if n := logs.FilterMessage("multiplier clamped").Len(); n != 1 {
		t.Fatalf("clamp warnings = %d, want exactly 1 for a sustained clamp", n)
	}
}

func TestNonPositiveLengthDrawsNothing(t *testing.T) {
	e, _, rec := newTestEngine(0.67, math.Pi/4)
	e.Grow(0)
	if e.Frame().Calls != 0 || len(rec.Ops()) != 0 {
		t.Fatal("zero length must not draw")
	}
}

func TestRecursionStopsAtMaxDepth(t *testing.T) {
	rec := render.NewRecorder(100, 100)
	p := &core.Params{
		Angle:         0.5,
		MaxAngle:      0.5,
		Multiplier:    1.5,
		MaxMultiplier: 1.5,
		Random:        core.RandomFactors{A: 1, B: 1},
	}
	e := NewEngine(rec, p, nil)
	e.Grow(5000)

	f := e.Frame()
	if len(f.Leaves) != 1<<MaxDepth {
		t.Fatalf("leaves = %d, want %d", len(f.Leaves), 1<<MaxDepth)
	}
	for _, l := range f.Leaves {
		if l.Depth != MaxDepth {
			t.Fatalf("leaf at depth %d, want %d", l.Depth, MaxDepth)
		}
	}
	if d := Depth(5000, 1.5); d != MaxDepth {
		t.Fatalf("Depth(5000, 1.5) = %d, want %d", d, MaxDepth)
	}
}
