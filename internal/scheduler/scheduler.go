package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"creator_sync/internal/metrics"
)

// Job is one unit of periodic work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs a job immediately and then on every tick. Job errors and
// panics are logged; the ticker keeps going. A run has no deadline of its
// own and is only cancelled when Serve's context is.
type Scheduler struct {
	job      Job
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(job Job, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		logger:   logger.With("job", job.Name()),
	}
}

// Serve blocks until ctx is cancelled.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runJob(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runJob(ctx)
		}
	}
}

func (s *Scheduler) String() string {
	return "scheduler/" + s.job.Name()
}

func (s *Scheduler) runJob(ctx context.Context) {
	outcome := "ok"
	defer func() {
		metrics.SchedulerRuns.WithLabelValues(s.job.Name(), outcome).Inc()
	}()

	if err := s.safeRun(ctx); err != nil {
		outcome = "error"
		if _, ok := err.(*panicError); ok {
			outcome = "panic"
		}
		s.logger.Error("job failed", "error", err)
	}
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("job panicked: %v", e.value)
}

func (s *Scheduler) safeRun(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return s.job.Run(ctx)
}
