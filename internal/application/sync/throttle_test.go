package sync

import (
	"context"
	"errors"
	stdsync "sync"
	"testing"
	"time"
)

func TestThrottle_RunsRequestsInOrder(t *testing.T) {
	throttle := NewThrottle(time.Millisecond)
	defer throttle.Close()

	var mu stdsync.Mutex
	var order []int

	var dones []<-chan error
	for i := 0; i < 3; i++ {
		i := i
		dones = append(dones, throttle.Enqueue(context.Background(), func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}))
	}
	for _, done := range dones {
		if err := <-done; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("expected FIFO order [0 1 2], got %v", order)
	}
}

func TestThrottle_FailureRejectsOnlyThatRequest(t *testing.T) {
	throttle := NewThrottle(time.Millisecond)
	defer throttle.Close()

	boom := errors.New("boom")
	failed := throttle.Enqueue(context.Background(), func(context.Context) error {
		return boom
	})
	ok := throttle.Enqueue(context.Background(), func(context.Context) error {
		return nil
	})

	if err := <-failed; !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if err := <-ok; err != nil {
		t.Errorf("expected following request to succeed, got %v", err)
	}
}

func TestThrottle_Close(t *testing.T) {
	t.Run("drains queued requests before stopping", func(t *testing.T) {
		throttle := NewThrottle(time.Millisecond)

		done := throttle.Enqueue(context.Background(), func(context.Context) error {
			return nil
		})
		throttle.Close()

		if err := <-done; err != nil {
			t.Errorf("expected queued request to complete, got %v", err)
		}
	})

	t.Run("rejects requests enqueued after close", func(t *testing.T) {
		throttle := NewThrottle(time.Millisecond)
		throttle.Close()

		done := throttle.Enqueue(context.Background(), func(context.Context) error {
			return nil
		})
		if err := <-done; !errors.Is(err, ErrThrottleClosed) {
			t.Errorf("expected ErrThrottleClosed, got %v", err)
		}
	})
}
