package quota

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"creator_sync/internal/domain"
)

type LedgerStore interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	Usage(ctx context.Context, provider string, since time.Time) (domain.Usage, error)
}
