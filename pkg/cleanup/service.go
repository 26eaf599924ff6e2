// Package cleanup enforces the journey retention policy on a cron schedule.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JourneyPurger deletes journeys last updated before the cutoff, at most
// batchSize per round trip, and reports the total. Satisfied by
// services.JourneyService.
type JourneyPurger interface {
	DeleteUpdatedBefore(ctx context.Context, cutoff time.Time, batchSize int) (int, error)
}

// Service runs the retention purge. Deleting a journey cascades to its
// events and vehicle sequence, so one pass covers the whole subtree.
type Service struct {
	purger        JourneyPurger
	retentionDays int
	batchSize     int
	schedule      string
	logger        *slog.Logger

	cron *cron.Cron
}

// Options tune the retention pass; zero values take the defaults
// (90 days, 30000 rows per batch, daily at 05:00).
type Options struct {
	RetentionDays int
	BatchSize     int
	Schedule      string
}

// NewService creates a stopped retention service.
func NewService(purger JourneyPurger, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RetentionDays <= 0 {
		opts.RetentionDays = 90
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 30000
	}
	if opts.Schedule == "" {
		opts.Schedule = "0 0 5 * * *"
	}
	return &Service{
		purger:        purger,
		retentionDays: opts.RetentionDays,
		batchSize:     opts.BatchSize,
		schedule:      opts.Schedule,
		logger:        logger,
	}
}

// Start schedules the purge. The schedule uses six fields with seconds,
// matching the configured default of daily 05:00.
func (s *Service) Start() error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(s.schedule, func() { s.Run(context.Background()) }); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.logger.Info("retention schedule started",
		slog.String("schedule", s.schedule),
		slog.Int("retention_days", s.retentionDays))
	return nil
}

// Stop halts the schedule and waits for a running purge to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("retention schedule stopped")
}

// Run executes one purge pass immediately.
func (s *Service) Run(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	start := time.Now()
	deleted, err := s.purger.DeleteUpdatedBefore(ctx, cutoff, s.batchSize)
	if err != nil {
		s.logger.Error("retention purge failed",
			slog.Time("cutoff", cutoff),
			slog.Int("deleted", deleted),
			slog.Any("error", err))
		return
	}
	if deleted > 0 {
		s.logger.Info("retention purge finished",
			slog.Time("cutoff", cutoff),
			slog.Int("deleted", deleted),
			slog.Duration("elapsed", time.Since(start)))
	}
}
