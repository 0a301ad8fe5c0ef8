package core

import (
	"testing"
	"time"
)

func TestThrottleSkipsTicksInsideInterval(t *testing.T) {
	start := time.Unix(100, 0)
	th := NewThrottle(10 * time.Millisecond)
	th.Reset(start)

	for i := 1; i <= 5; i++ {
		if th.Ready(start.Add(time.Duration(i) * 2 * time.Millisecond)) {
			t.Fatalf("tick %d at %v accepted inside the interval", i, time.Duration(i)*2*time.Millisecond)
		}
	}
	if !th.Ready(start.Add(11 * time.Millisecond)) {
		t.Fatal("expected tick past the interval to be accepted")
	}
}

func TestThrottlePreservesPhase(t *testing.T) {
	start := time.Unix(0, 0)
	th := NewThrottle(10 * time.Millisecond)
	th.Reset(start)

	now := start.Add(25 * time.Millisecond)
	if !th.Ready(now) {
		t.Fatal("expected tick to be accepted")
	}
	if got, want := th.Then(), now.Add(-5*time.Millisecond); !got.Equal(want) {
		t.Fatalf("then = %v, want %v", got.Sub(start), want.Sub(start))
	}
	if th.Delta() != 25*time.Millisecond {
		t.Fatalf("delta = %v, want 25ms", th.Delta())
	}
}

func TestThrottleDefaultsInterval(t *testing.T) {
	if got := NewThrottle(0).Interval(); got != DefaultInterval {
		t.Fatalf("interval = %v, want %v", got, DefaultInterval)
	}
}
