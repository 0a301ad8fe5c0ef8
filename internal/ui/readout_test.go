package ui

import (
	"strings"
	"testing"

	"fractal-tree/internal/core"
)

func TestReadoutKeepsLastReport(t *testing.T) {
	var r Readout
	r.Report(core.Stats{Count: 3})
	r.Report(core.Stats{Count: 255, Cycle: 0.734, Angle: 0.5, Multiplier: 0.49, Running: true, Ticks: 23})

	if r.Reports() != 2 {
		t.Fatalf("reports = %d, want 2", r.Reports())
	}
	if r.Stats().Count != 255 {
		t.Fatalf("count = %d, want the latest report", r.Stats().Count)
	}
	text := r.Text()
	for _, want := range []string{"count: 255", "cycle: 0.73", "growing (23 ticks)"} {
		if !strings.Contains(text, want) {
			t.Fatalf("readout %q missing %q", text, want)
		}
	}
}

func TestOverlayIsDebugSink(t *testing.T) {
	o := NewOverlay()
	var sink core.DebugSink = o
	sink.Report(core.Stats{Count: 7})
	if o.Stats().Count != 7 {
		t.Fatal("overlay did not record the report")
	}
}
