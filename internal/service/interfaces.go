package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"creator_sync/internal/domain"
)

type ContentProvider interface {
	ID() string
	Cost(op domain.Operation) int
	GetAccountInfo(ctx context.Context, externalID string) (*domain.AccountInfo, error)
	ListItemsPage(ctx context.Context, req domain.PageRequest) (*domain.ItemsPage, error)
}

type AccountStore interface {
	Get(ctx context.Context, id int64) (*domain.SourceAccountLink, error)
	ListByProvider(ctx context.Context, provider string) ([]domain.SourceAccountLink, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.SourceAccountLink, error)
	Save(ctx context.Context, link *domain.SourceAccountLink) error
	RequestFullSync(ctx context.Context, id int64, at time.Time) error
	ClearFullSyncRequest(ctx context.Context, id int64, requestedAt time.Time) error
}

type RecordStore interface {
	FindByExternalID(ctx context.Context, provider, externalID string) (*domain.ContentRecord, error)
	// Insert reports created=false when a concurrent sync stored the same
	// (provider, external id) first; the returned id is then the existing row.
	Insert(ctx context.Context, rec *domain.ContentRecord) (id int64, created bool, err error)
	UpdateStatistics(ctx context.Context, id int64, stats domain.Statistics) error
	RefreshSyncTimestamp(ctx context.Context, id int64, syncedAt, expiresAt time.Time) error
}

type RetentionStore interface {
	DeleteExpiredUnauthorized(ctx context.Context, now time.Time) (int64, error)
	ExtendExpiredAuthorized(ctx context.Context, now, expiresAt time.Time) (int64, error)
	DeletePublishedBefore(ctx context.Context, accountID int64, cutoff time.Time) (int64, error)
	DeleteUnauthorizedByAccount(ctx context.Context, accountID int64) (int64, error)
	CountByAccount(ctx context.Context, accountID int64) (int64, error)
}

type ConsentProvider interface {
	HasConsent(ctx context.Context, ownerID string) (bool, error)
}

// ConsentInvalidator drops a cached consent answer after the owner's consent changed.
type ConsentInvalidator interface {
	Invalidate(ownerID string)
}

type QuotaTracker interface {
	Admit(ctx context.Context, provider string, cost int) (domain.Admission, error)
	Record(ctx context.Context, entry domain.LedgerEntry)
}

// AccountLocker hands out advisory per-account locks. release must be called
// once the lock is no longer needed.
type AccountLocker interface {
	TryLock(ctx context.Context, accountID int64) (release func(), acquired bool, err error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishRecord(ctx context.Context, rec *domain.ContentRecord, isNew bool) error
	PublishPurge(ctx context.Context, event *domain.PurgeEvent) error
	Close() error
}
