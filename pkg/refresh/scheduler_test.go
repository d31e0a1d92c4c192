package refresh

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunRefreshesOnceAtStart(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})

	s := NewScheduler("test", time.Hour, func(ctx context.Context) error {
		if calls.Add(1) == 1 {
			close(started)
		}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("initial refresh never ran")
	}
}

func TestTriggerCancelsSupersededRefresh(t *testing.T) {
	var mu sync.Mutex
	var contexts []context.Context
	var commitErrs []error
	release := make(chan struct{})
	ran := make(chan struct{}, 4)

	s := NewScheduler("test", time.Hour, func(ctx context.Context) error {
		mu.Lock()
		first := len(contexts) == 0
		contexts = append(contexts, ctx)
		mu.Unlock()
		if first {
			ran <- struct{}{}
			// Hold the first refresh in flight until it is superseded.
			<-release
			return ctx.Err()
		}
		// A real refresh checks its context right before committing
		// results; record what that check would see.
		mu.Lock()
		commitErrs = append(commitErrs, ctx.Err())
		mu.Unlock()
		ran <- struct{}{}
		return ctx.Err()
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	// Wait for the first refresh to be in flight, then supersede it.
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("first refresh never started")
	}
	s.Trigger()

	// The trigger must cancel the in-flight context.
	mu.Lock()
	firstCtx := contexts[0]
	mu.Unlock()
	select {
	case <-firstCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("superseded refresh context was not cancelled")
	}
	close(release)

	// And a fresh refresh must follow with a live context.
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not re-run after supersede")
	}
	mu.Lock()
	commitErr := commitErrs[0]
	mu.Unlock()
	if commitErr != nil {
		t.Errorf("re-run refresh saw a cancelled context at commit time: %v", commitErr)
	}
}

func TestTriggerCoalesces(t *testing.T) {
	s := NewScheduler("test", time.Hour, func(ctx context.Context) error { return nil }, nil)

	// Without a running loop, repeated triggers must collapse into one
	// pending slot instead of queueing.
	for i := 0; i < 10; i++ {
		s.Trigger()
	}
	if got := len(s.trigger); got != 1 {
		t.Errorf("pending triggers = %d, want 1", got)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler("test", 10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	n := calls.Load()
	time.Sleep(50 * time.Millisecond)
	if calls.Load() != n {
		t.Error("refreshes continued after Run returned")
	}
}
