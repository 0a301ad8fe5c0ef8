package core

import "time"

// FrameHandle identifies a requested frame callback so it can be cancelled.
type FrameHandle uint64

// FrameScheduler schedules a callback before the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

type pendingFrame struct {
	id FrameHandle
	fn func(time.Time)
}

// FrameQueue is a FrameScheduler for hosts that expose a per-tick hook.
// The host calls Flush once per repaint; callbacks requested while a flush
// is running are deferred to the next one.
type FrameQueue struct {
	next     FrameHandle
	pending  []pendingFrame
	flushing []pendingFrame
}

// NewFrameQueue returns an empty queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameHandle {
	q.next++
	q.pending = append(q.pending, pendingFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a queued callback. Unknown or already-run handles are ignored.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	for i, f := range q.pending {
		if f.id == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.flushing {
		if q.flushing[i].id == h {
			q.flushing[i].fn = nil
			return
		}
	}
}

// Flush runs every callback that was queued before the call and returns how
// many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	batch := q.pending
	q.pending = nil
	q.flushing = batch
	ran := 0
	for i := range batch {
		fn := batch[i].fn
		if fn == nil {
			continue
		}
		batch[i].fn = nil
		fn(now)
		ran++
	}
	q.flushing = nil
	return ran
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int { return len(q.pending) }
