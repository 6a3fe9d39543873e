// Package sync orchestrates the project collection: load with fallback,
// debounced saves, remote reconciliation and status transitions.
package sync

import (
	"context"
	"errors"
	"log/slog"
	stdsync "sync"
	"time"
)

// ErrThrottleClosed is returned for requests enqueued after Close.
var ErrThrottleClosed = errors.New("request throttle is closed")

// request is a queued write thunk together with its result channel.
type request struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// Throttle serializes an unbounded stream of write requests into a single
// lane: exactly one request runs at a time, strictly FIFO, with a fixed
// delay after each completion so bursts of saves do not trip the remote
// store's rate limits. A request's failure rejects only that request; the
// queue keeps processing.
type Throttle struct {
	mu     stdsync.Mutex
	cond   *stdsync.Cond
	queue  []*request
	delay  time.Duration
	closed bool
}

// NewThrottle creates a throttle with the given inter-request delay and
// starts its worker.
func NewThrottle(delay time.Duration) *Throttle {
	t := &Throttle{delay: delay}
	t.cond = stdsync.NewCond(&t.mu)
	go t.run()
	return t
}

// Enqueue appends a request to the queue. The returned channel receives the
// thunk's own outcome exactly once.
func (t *Throttle) Enqueue(ctx context.Context, fn func(context.Context) error) <-chan error {
	done := make(chan error, 1)

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		done <- ErrThrottleClosed
		return done
	}
	t.queue = append(t.queue, &request{ctx: ctx, fn: fn, done: done})
	t.cond.Signal()
	t.mu.Unlock()

	return done
}

// Close stops the worker after the already-queued requests have drained.
func (t *Throttle) Close() {
	t.mu.Lock()
	t.closed = true
	t.cond.Signal()
	t.mu.Unlock()
}

func (t *Throttle) run() {
	for {
		t.mu.Lock()
		for len(t.queue) == 0 && !t.closed {
			t.cond.Wait()
		}
		if len(t.queue) == 0 && t.closed {
			t.mu.Unlock()
			return
		}
		req := t.queue[0]
		t.queue = t.queue[1:]
		t.mu.Unlock()

		err := req.fn(req.ctx)
		if err != nil {
			slog.Warn("Throttled request failed", "error", err)
		}
		req.done <- err

		time.Sleep(t.delay)
	}
}
