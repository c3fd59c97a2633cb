package main

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator_sync/internal/config"
	"creator_sync/internal/provider/youtube"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewProvider_YouTube(t *testing.T) {
	p, err := newProvider(config.ProviderConfig{
		Name:    "youtube",
		BaseURL: "http://127.0.0.1:1",
		Timeout: time.Second,
	}, testLogger())

	require.NoError(t, err)
	assert.Equal(t, youtube.ProviderID, p.ID())
}

func TestNewProvider_Unknown(t *testing.T) {
	p, err := newProvider(config.ProviderConfig{Name: "vimeo"}, testLogger())

	assert.Nil(t, p)
	assert.ErrorContains(t, err, `unknown provider "vimeo"`)
}
