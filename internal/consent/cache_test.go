package consent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	answers map[string]bool
	err     error
	calls   int
}

func (s *countingSource) HasConsent(_ context.Context, ownerID string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.answers[ownerID], nil
}

func TestCache_ServesRepeatLookups(t *testing.T) {
	src := &countingSource{answers: map[string]bool{"owner-1": true}}
	c := NewCache(src, 16, time.Hour)

	for i := 0; i < 3; i++ {
		granted, err := c.HasConsent(context.Background(), "owner-1")
		require.NoError(t, err)
		assert.True(t, granted)
	}
	assert.Equal(t, 1, src.calls)
}

func TestCache_Invalidate(t *testing.T) {
	src := &countingSource{answers: map[string]bool{"owner-1": true}}
	c := NewCache(src, 16, time.Hour)

	_, _ = c.HasConsent(context.Background(), "owner-1")
	src.answers["owner-1"] = false
	c.Invalidate("owner-1")

	granted, err := c.HasConsent(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.False(t, granted)
	assert.Equal(t, 2, src.calls)
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	src := &countingSource{err: errors.New("connection reset")}
	c := NewCache(src, 16, time.Hour)

	_, err := c.HasConsent(context.Background(), "owner-1")
	require.Error(t, err)

	src.err = nil
	_, err = c.HasConsent(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCache_Expires(t *testing.T) {
	src := &countingSource{answers: map[string]bool{}}
	c := NewCache(src, 16, 20*time.Millisecond)

	_, _ = c.HasConsent(context.Background(), "owner-1")
	time.Sleep(60 * time.Millisecond)
	_, _ = c.HasConsent(context.Background(), "owner-1")

	assert.Equal(t, 2, src.calls)
}
