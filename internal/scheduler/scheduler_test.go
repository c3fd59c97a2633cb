package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcJob struct {
	calls atomic.Int32
	run   func(ctx context.Context, call int32) error
}

func (j *funcJob) Name() string { return "test-job" }

func (j *funcJob) Run(ctx context.Context) error {
	return j.run(ctx, j.calls.Add(1))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	job := &funcJob{run: func(context.Context, int32) error { return nil }}
	s := NewScheduler(job, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- s.Serve(ctx) }()

	require.Eventually(t, func() bool { return job.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_SurvivesErrorsAndPanics(t *testing.T) {
	job := &funcJob{run: func(_ context.Context, call int32) error {
		switch call {
		case 1:
			return errors.New("database unavailable")
		case 2:
			panic("nil map write")
		}
		return nil
	}}
	s := NewScheduler(job, 5*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Serve(ctx) }()

	require.Eventually(t, func() bool { return job.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_RunHasNoDeadline(t *testing.T) {
	deadlineSeen := make(chan bool, 1)
	job := &funcJob{run: func(ctx context.Context, call int32) error {
		if call == 1 {
			_, ok := ctx.Deadline()
			deadlineSeen <- ok
		}
		return nil
	}}
	s := NewScheduler(job, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Serve(ctx) }()

	assert.False(t, <-deadlineSeen)
}

func TestScheduler_CancelReachesRunningJob(t *testing.T) {
	started := make(chan struct{})
	stopped := make(chan error, 1)
	job := &funcJob{run: func(ctx context.Context, call int32) error {
		close(started)
		<-ctx.Done()
		stopped <- ctx.Err()
		return ctx.Err()
	}}
	s := NewScheduler(job, time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	<-started
	cancel()

	assert.ErrorIs(t, <-stopped, context.Canceled)
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestScheduler_String(t *testing.T) {
	s := NewScheduler(&funcJob{}, time.Minute, testLogger())
	assert.Equal(t, "scheduler/test-job", s.String())
}
