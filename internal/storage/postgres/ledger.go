package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"

	"creator_sync/internal/domain"
)

// LedgerStore is the append-only quota ledger.
type LedgerStore struct {
	db *sqlx.DB
}

func NewLedgerStore(db *sqlx.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	metadata := []byte("{}")
	if len(entry.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("marshal ledger metadata: %w", err)
		}
	}

	query := `
		INSERT INTO quota_ledger (provider, operation, units_cost, created_at, outcome, latency_ms, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.Provider,
		entry.Operation,
		entry.UnitsCost,
		entry.Timestamp,
		entry.Outcome,
		entry.Latency.Milliseconds(),
		string(metadata),
	)
	return err
}

// Usage sums the ledger rows of provider recorded at or after since.
func (s *LedgerStore) Usage(ctx context.Context, provider string, since time.Time) (domain.Usage, error) {
	var usage domain.Usage
	query := `
		SELECT
			COALESCE(SUM(units_cost), 0) AS units,
			COUNT(*) AS requests,
			COUNT(*) FILTER (WHERE outcome = 'error') AS errors
		FROM quota_ledger
		WHERE provider = $1 AND created_at >= $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &usage, query, provider, since)
	return usage, err
}
