package main

import (
	"fmt"
	"log/slog"

	"creator_sync/internal/config"
	"creator_sync/internal/provider/youtube"
	"creator_sync/internal/service"
)

// newProvider builds the content provider named in the config.
func newProvider(cfg config.ProviderConfig, logger *slog.Logger) (service.ContentProvider, error) {
	switch cfg.Name {
	case youtube.ProviderID:
		return youtube.New(youtube.Config{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Timeout: cfg.Timeout,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}
