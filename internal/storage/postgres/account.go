package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"creator_sync/internal/domain"
)

const accountColumns = `
	id, owner_id, provider, external_id, sync_state, last_sync_at, last_video_sync_at,
	synced_item_count, total_item_count, page_cursor, failure_count, next_attempt_at,
	last_error, created_at, updated_at, full_sync_requested_at`

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Get(ctx context.Context, id int64) (*domain.SourceAccountLink, error) {
	var link domain.SourceAccountLink
	query := `SELECT` + accountColumns + ` FROM source_accounts WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &link, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *AccountStore) ListByProvider(ctx context.Context, provider string) ([]domain.SourceAccountLink, error) {
	var links []domain.SourceAccountLink
	query := `SELECT` + accountColumns + ` FROM source_accounts WHERE provider = $1 ORDER BY id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &links, query, provider); err != nil {
		return nil, err
	}
	return links, nil
}

func (s *AccountStore) ListByOwner(ctx context.Context, ownerID string) ([]domain.SourceAccountLink, error) {
	var links []domain.SourceAccountLink
	query := `SELECT` + accountColumns + ` FROM source_accounts WHERE owner_id = $1 ORDER BY id`

	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &links, query, ownerID); err != nil {
		return nil, err
	}
	return links, nil
}

// RequestFullSync records that the account must run a full pass. It touches
// only the request column, so a sync holding the account lock cannot
// overwrite it with Save.
func (s *AccountStore) RequestFullSync(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE source_accounts SET full_sync_requested_at = $2 WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, at)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ClearFullSyncRequest drops the request seen at requestedAt. A newer request
// stored in the meantime is kept.
func (s *AccountStore) ClearFullSyncRequest(ctx context.Context, id int64, requestedAt time.Time) error {
	query := `
		UPDATE source_accounts SET full_sync_requested_at = NULL
		WHERE id = $1 AND full_sync_requested_at = $2`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, requestedAt)
	return err
}

// Save persists the mutable sync fields of the link.
func (s *AccountStore) Save(ctx context.Context, link *domain.SourceAccountLink) error {
	query := `
		UPDATE source_accounts SET
			sync_state = $2,
			last_sync_at = $3,
			last_video_sync_at = $4,
			synced_item_count = $5,
			total_item_count = $6,
			page_cursor = $7,
			failure_count = $8,
			next_attempt_at = $9,
			last_error = $10,
			updated_at = NOW()
		WHERE id = $1`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		link.ID,
		link.SyncState,
		link.LastSyncAt,
		link.LastVideoSyncAt,
		link.SyncedItemCount,
		link.TotalItemCount,
		link.PageCursor,
		link.FailureCount,
		link.NextAttemptAt,
		link.LastError,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
