package core

import (
	"testing"
	"time"
)

func TestFrameQueueDefersRequestsMadeDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	now := time.Unix(0, 0)

	runs := 0
	var tick func(time.Time)
	tick = func(time.Time) {
		runs++
		q.RequestFrame(tick)
	}
	q.RequestFrame(tick)

	if got := q.Flush(now); got != 1 {
		t.Fatalf("first flush ran %d callbacks, want 1", got)
	}
	if runs != 1 {
		t.Fatalf("callback ran %d times during one flush, want 1", runs)
	}
	if q.Pending() != 1 {
		t.Fatalf("expected re-armed callback to wait for the next flush, pending=%d", q.Pending())
	}
	q.Flush(now.Add(time.Millisecond))
	if runs != 2 {
		t.Fatalf("expected second flush to run the re-armed callback, runs=%d", runs)
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	h := q.RequestFrame(func(time.Time) { ran = true })
	q.CancelFrame(h)
	if q.Flush(time.Unix(0, 0)) != 0 || ran {
		t.Fatal("cancelled callback must not run")
	}

	// Cancelling the request a callback just made leaves nothing queued.
	q.RequestFrame(func(time.Time) {
		h := q.RequestFrame(func(time.Time) { ran = true })
		q.CancelFrame(h)
	})
	q.Flush(time.Unix(0, 0))
	if q.Pending() != 0 {
		t.Fatalf("expected empty queue after cancel inside flush, pending=%d", q.Pending())
	}
	q.Flush(time.Unix(1, 0))
	if ran {
		t.Fatal("callback cancelled inside flush ran anyway")
	}
}

func TestFrameQueueCancelLaterEntryOfRunningBatch(t *testing.T) {
	q := NewFrameQueue()
	var second FrameHandle
	secondRan := false
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { secondRan = true })

	if got := q.Flush(time.Unix(0, 0)); got != 1 {
		t.Fatalf("expected only the first callback to run, ran %d", got)
	}
	if secondRan {
		t.Fatal("callback cancelled earlier in the same flush ran")
	}
}
