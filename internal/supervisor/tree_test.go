package supervisor

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

type countingService struct {
	name   string
	starts atomic.Int32
	fail   bool
}

func (s *countingService) Serve(ctx context.Context) error {
	s.starts.Add(1)
	if s.fail {
		return errors.New("boom")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *countingService) String() string {
	return s.name
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewTree_AppliesDefaults(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{})

	assert.Equal(t, DefaultTreeConfig(), tree.Config())
}

func TestNewTree_KeepsExplicitValues(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{FailureThreshold: 2, FailureBackoff: time.Second})

	assert.Equal(t, 2.0, tree.Config().FailureThreshold)
	assert.Equal(t, time.Second, tree.Config().FailureBackoff)
	assert.Equal(t, 30.0, tree.Config().FailureDecay)
}

func TestTree_ServesAllLayers(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

	job := &countingService{name: "job"}
	listener := &countingService{name: "listener"}
	api := &countingService{name: "api"}
	tree.AddJob(job)
	tree.AddMessagingService(listener)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		return job.starts.Load() == 1 && listener.starts.Load() == 1 && api.starts.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			assert.ErrorIs(t, err, context.Canceled)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
}

func TestTree_RestartsFailingService(t *testing.T) {
	tree := NewTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &countingService{name: "flaky", fail: true}
	tree.AddMessagingService(flaky)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		return flaky.starts.Load() >= 3
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	<-errCh
}
