// Package collector contains the periodic pollers that observe the upstream
// world: servers, dispatch posts, active trains, timetables and vehicle
// consists. Each collector owns a fixed-delay scheduler, so a new tick never
// starts before the previous one finished, and processes servers
// sequentially inside a tick.
package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs one function on a fixed delay: the next tick is armed only
// after the current one returns. A panicking tick is logged and the
// scheduler re-arms unchanged.
type Scheduler struct {
	name   string
	period time.Duration
	logger *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(name string, period time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		name:   name,
		period: period,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start launches the tick loop. The context handed to tick is cancelled
// when Stop is called.
func (s *Scheduler) Start(tick func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			<-s.stopCh
			cancel()
		}()

		for {
			start := time.Now()
			s.runTick(ctx, tick)
			elapsed := time.Since(start)
			if elapsed > s.period {
				s.logger.Warn("tick overran its period",
					slog.String("collector", s.name),
					slog.Duration("elapsed", elapsed),
					slog.Duration("period", s.period))
			}

			select {
			case <-s.stopCh:
				return
			case <-time.After(s.period):
			}
		}
	}()
}

func (s *Scheduler) runTick(ctx context.Context, tick func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tick panicked",
				slog.String("collector", s.name),
				slog.Any("panic", r))
		}
	}()
	tick(ctx)
}

// Stop terminates the loop and waits for an in-flight tick to return.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}
