// Package scheduler drives the periodic update loop. One scheduler runs
// per process; it is the only component that triggers cycles on its own.
package scheduler

import (
	"context"
	"sync"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/errors"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
)

// Runner executes one update cycle.
type Runner interface {
	RunCycle(ctx context.Context) error
}

// Scheduler invokes the runner once immediately on Start, then once per
// interval until stopped. A failing cycle is logged and the loop retries
// after the normal interval; it never terminates on its own.
type Scheduler struct {
	runner   Runner
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

func New(runner Runner, interval time.Duration) (*Scheduler, error) {
	errFactory := errors.New()

	if runner == nil {
		return nil, errFactory.New(ErrNilRunner)
	}
	if interval <= 0 {
		return nil, errFactory.WithData(ErrInvalidInterval, interval)
	}

	return &Scheduler{
		runner:   runner,
		interval: interval,
	}, nil
}

// Start launches the background update loop. The parent context bounds
// the loop's lifetime in addition to Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errors.New().New(ErrAlreadyStarted)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.stopped = make(chan struct{})

	go s.loop(loopCtx)

	logger.Info().Dur("interval", s.interval).Msg("Update loop started")

	return nil
}

// Stop cancels the loop and waits for it to exit. An in-flight cycle is
// allowed to finish; no new cycle starts after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	stopped := s.stopped
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-stopped

	logger.Info().Msg("Update loop stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.stopped)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Re-check before running: the tick may race with Stop
			if ctx.Err() != nil {
				return
			}
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if err := s.runner.RunCycle(ctx); err != nil {
		if ctx.Err() != nil {
			// Cancellation during shutdown is expected, not an error
			return
		}
		logger.Error().Err(err).Msg("Update cycle failed, retrying next interval")
	}
}
