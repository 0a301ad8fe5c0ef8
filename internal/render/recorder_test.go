package render

import (
	"testing"
)

func TestRecorderRecordsWorldCoordinates(t *testing.T) {
	r := NewRecorder(200, 100)
	r.Translate(100, 100)
	r.SetStrokeColor(TrunkColor)
	r.SetLineWidth(10)
	DrawSegment(r, 0, -25)
	r.Translate(0, -25)
	DrawLeaf(r, 0, -5)

	ops := r.Ops()
	if len(ops) != 2 {
		t.Fatalf("recorded %d ops, want 2", len(ops))
	}
	line := ops[0]
	if line.Kind != OpLine || line.X0 != 100 || line.Y0 != 100 || line.X1 != 100 || line.Y1 != 75 {
		t.Fatalf("unexpected line %+v", line)
	}
	if line.Color != TrunkColor || line.Width != 10 {
		t.Fatalf("line style = %v/%v, want trunk colour and width 10", line.Color, line.Width)
	}
	leaf := ops[1]
	if leaf.Kind != OpRect || leaf.X0 != 100 || leaf.Y0 != 70 || leaf.X1 != LeafSize {
		t.Fatalf("unexpected leaf %+v", leaf)
	}
	if leaf.Color != LeafColor {
		t.Fatalf("leaf colour = %v, want %v", leaf.Color, LeafColor)
	}
}

func TestRecorderClearWipes(t *testing.T) {
	r := NewRecorder(10, 10)
	r.StrokeLine(0, 0, 1, 1)
	r.Clear()
	if r.Count(OpLine) != 0 {
		t.Fatal("clear must drop recorded primitives")
	}
	if r.Clears() != 1 {
		t.Fatalf("clears = %d, want 1", r.Clears())
	}
}
