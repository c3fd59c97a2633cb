package listener

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"creator_sync/internal/domain"
)

type ConsentWriter interface {
	SetConsent(ctx context.Context, ownerID string, granted bool) error
}

type ConsentInvalidator interface {
	Invalidate(ownerID string)
}

// Revoker purges what an owner's withdrawn consent no longer covers.
type Revoker interface {
	RevokeOwnerConsent(ctx context.Context, ownerID string) ([]domain.Revocation, error)
}

// Granter schedules a re-sync once an owner grants consent.
type Granter interface {
	HandleConsentGranted(ctx context.Context, ownerID string) error
}
