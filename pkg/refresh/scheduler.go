// Package refresh runs a periodic re-fetch loop with manual triggers, the
// way dashboard views keep server-owned lists current. Interval ticks and
// external triggers (a reload signal, a post-mutation refresh) are coalesced
// so at most one refresh is in flight; a trigger that arrives mid-flight
// cancels the superseded request and starts a fresh one. Refresh functions
// must check their context before committing state, so a superseded fetch
// can never overwrite a newer one.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Func performs one refresh. Implementations must not commit results after
// ctx is cancelled.
type Func func(ctx context.Context) error

type Scheduler struct {
	name     string
	interval time.Duration
	fn       Func
	logger   *slog.Logger

	// trigger is buffered with size 1: a burst of triggers while a refresh
	// is pending collapses into a single extra run.
	trigger chan struct{}
}

func NewScheduler(name string, interval time.Duration, fn Func, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests an immediate refresh. Never blocks; triggers raised while
// one is already pending coalesce.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run refreshes once immediately, then on every interval tick or trigger,
// until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-s.trigger:
		}
		s.runOnce(ctx)
	}
}

// runOnce executes the refresh function. If a trigger arrives while the
// refresh is still in flight, the in-flight context is cancelled and the
// refresh re-runs once the superseded call returns.
func (s *Scheduler) runOnce(ctx context.Context) {
	for {
		rctx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			done <- s.fn(rctx)
		}()

		rerun := false
	wait:
		for {
			select {
			case err := <-done:
				cancel()
				if err != nil && !errors.Is(err, context.Canceled) {
					s.logger.Warn("refresh failed", "scheduler", s.name, "err", err)
				}
				break wait
			case <-s.trigger:
				// Supersede: cancel the in-flight refresh and go again.
				cancel()
				rerun = true
			case <-ctx.Done():
				cancel()
				<-done
				return
			}
		}

		if !rerun {
			return
		}
	}
}
