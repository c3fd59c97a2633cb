package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// AccountLocker hands out session-level Postgres advisory locks keyed by
// account id. Each held lock pins one pooled connection until released.
type AccountLocker struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewAccountLocker(db *sqlx.DB, logger *slog.Logger) *AccountLocker {
	return &AccountLocker{db: db, logger: logger.With("component", "account_locker")}
}

func (l *AccountLocker) TryLock(ctx context.Context, accountID int64) (func(), bool, error) {
	conn, err := l.db.Connx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("acquire connection: %w", err)
	}

	var acquired bool
	err = conn.QueryRowxContext(ctx,
		`SELECT pg_try_advisory_lock($1)`, accountID,
	).Scan(&acquired)
	if err != nil {
		_ = conn.Close()
		return nil, false, fmt.Errorf("try advisory lock: %w", err)
	}
	if !acquired {
		_ = conn.Close()
		return nil, false, nil
	}

	release := func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := conn.ExecContext(unlockCtx,
			`SELECT pg_advisory_unlock($1)`, accountID,
		); err != nil {
			l.logger.Error("failed to release advisory lock", "account_id", accountID, "error", err)
		}
		_ = conn.Close()
	}
	return release, true, nil
}
