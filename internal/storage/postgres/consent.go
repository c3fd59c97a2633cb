package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ConsentStore holds the latest consent decision per owner.
type ConsentStore struct {
	db *sqlx.DB
}

func NewConsentStore(db *sqlx.DB) *ConsentStore {
	return &ConsentStore{db: db}
}

// HasConsent reports false for owners that never decided.
func (s *ConsentStore) HasConsent(ctx context.Context, ownerID string) (bool, error) {
	var granted bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &granted,
		`SELECT granted FROM consent_flags WHERE owner_id = $1`, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return granted, err
}

func (s *ConsentStore) SetConsent(ctx context.Context, ownerID string, granted bool) error {
	query := `
		INSERT INTO consent_flags (owner_id, granted, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			granted = EXCLUDED.granted,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, ownerID, granted)
	return err
}
