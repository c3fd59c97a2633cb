package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"creator_sync/internal/domain"
)

type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// FindByExternalID returns nil without error when the item was never stored.
func (s *RecordStore) FindByExternalID(ctx context.Context, provider, externalID string) (*domain.ContentRecord, error) {
	var rec domain.ContentRecord
	query := `
		SELECT id, source_account_id, provider, external_id, title, published_at,
			view_count, like_count, comment_count, is_authorized_data,
			expires_at, last_synced_at, created_at
		FROM content_records
		WHERE provider = $1 AND external_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &rec, query, provider, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert stores a first-seen record. A concurrent insert of the same item
// resolves to the existing row, reported with created=false.
func (s *RecordStore) Insert(ctx context.Context, rec *domain.ContentRecord) (int64, bool, error) {
	query := `
		INSERT INTO content_records (
			source_account_id, provider, external_id, title, published_at,
			view_count, like_count, comment_count, is_authorized_data,
			expires_at, last_synced_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		ON CONFLICT (provider, external_id) DO NOTHING
		RETURNING id`

	exec := GetExecutor(ctx, s.db)

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		rec.SourceAccountID,
		rec.Provider,
		rec.ExternalID,
		rec.Title,
		rec.PublishedAt,
		rec.Views,
		rec.Likes,
		rec.Comments,
		rec.IsAuthorizedData,
		rec.ExpiresAt,
		rec.LastSyncedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		err = exec.QueryRowxContext(ctx,
			"SELECT id FROM content_records WHERE provider = $1 AND external_id = $2",
			rec.Provider, rec.ExternalID,
		).Scan(&id)
		if err != nil {
			return 0, false, err
		}
		return id, false, nil
	}

	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (s *RecordStore) UpdateStatistics(ctx context.Context, id int64, stats domain.Statistics) error {
	query := `
		UPDATE content_records SET
			view_count = $2,
			like_count = $3,
			comment_count = $4
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, stats.Views, stats.Likes, stats.Comments)
	return err
}

func (s *RecordStore) RefreshSyncTimestamp(ctx context.Context, id int64, syncedAt, expiresAt time.Time) error {
	query := `UPDATE content_records SET last_synced_at = $2, expires_at = $3 WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, syncedAt, expiresAt)
	return err
}

func (s *RecordStore) DeleteExpiredUnauthorized(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM content_records WHERE is_authorized_data = FALSE AND expires_at < $1`
	return s.execCount(ctx, query, now)
}

func (s *RecordStore) ExtendExpiredAuthorized(ctx context.Context, now, expiresAt time.Time) (int64, error) {
	query := `UPDATE content_records SET expires_at = $2 WHERE is_authorized_data = TRUE AND expires_at < $1`
	return s.execCount(ctx, query, now, expiresAt)
}

func (s *RecordStore) DeletePublishedBefore(ctx context.Context, accountID int64, cutoff time.Time) (int64, error) {
	query := `DELETE FROM content_records WHERE source_account_id = $1 AND published_at < $2`
	return s.execCount(ctx, query, accountID, cutoff)
}

func (s *RecordStore) DeleteUnauthorizedByAccount(ctx context.Context, accountID int64) (int64, error) {
	query := `DELETE FROM content_records WHERE source_account_id = $1 AND is_authorized_data = FALSE`
	return s.execCount(ctx, query, accountID)
}

func (s *RecordStore) CountByAccount(ctx context.Context, accountID int64) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		`SELECT COUNT(*) FROM content_records WHERE source_account_id = $1`, accountID)
	return n, err
}

func (s *RecordStore) execCount(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
