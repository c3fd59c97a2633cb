package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out calls to a rate-limited provider. The provider client is
// not assumed to throttle itself.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer allows one call per interval. A zero interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
