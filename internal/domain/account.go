package domain

import (
	"fmt"
	"time"
)

type SyncState string

const (
	StateNeverSynced    SyncState = "NEVER_SYNCED"
	StateConsentChanged SyncState = "CONSENT_CHANGED"
	StateInitialSyncing SyncState = "INITIAL_SYNCING"
	StateIncremental    SyncState = "INCREMENTAL"
	StateError          SyncState = "ERROR"
)

var transitions = map[SyncState]map[SyncState]bool{
	StateNeverSynced: {
		StateInitialSyncing: true,
		StateError:          true,
	},
	StateConsentChanged: {
		StateInitialSyncing: true,
		StateError:          true,
		StateConsentChanged: true,
	},
	StateInitialSyncing: {
		StateInitialSyncing: true, // resume from cursor
		StateIncremental:    true,
		StateError:          true,
		StateConsentChanged: true,
	},
	StateIncremental: {
		StateIncremental:    true,
		StateError:          true,
		StateConsentChanged: true,
	},
	StateError: {
		StateInitialSyncing: true,
		StateIncremental:    true,
		StateError:          true,
		StateConsentChanged: true,
	},
}

// Valid reports whether s is one of the five known states.
func (s SyncState) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s SyncState) CanTransitionTo(next SyncState) bool {
	return transitions[s][next]
}

// SourceAccountLink associates a platform creator with one external provider account.
type SourceAccountLink struct {
	ID              int64      `db:"id"`
	OwnerID         string     `db:"owner_id"`
	Provider        string     `db:"provider"`
	ExternalID      string     `db:"external_id"`
	SyncState       SyncState  `db:"sync_state"`
	LastSyncAt      *time.Time `db:"last_sync_at"`
	LastVideoSyncAt *time.Time `db:"last_video_sync_at"`
	SyncedItemCount int64      `db:"synced_item_count"`
	TotalItemCount  int64      `db:"total_item_count"`
	PageCursor      string     `db:"page_cursor"`
	FailureCount    int        `db:"failure_count"`
	NextAttemptAt   *time.Time `db:"next_attempt_at"`
	LastError       *string    `db:"last_error"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`

	// FullSyncRequestedAt is set when a consent grant could not be applied
	// because the account was busy. The next run applies it under the lock.
	FullSyncRequestedAt *time.Time `db:"full_sync_requested_at"`
}

// Transition moves the link to next, refusing transitions outside the state table.
func (l *SourceAccountLink) Transition(next SyncState) error {
	if !l.SyncState.CanTransitionTo(next) {
		return fmt.Errorf("illegal sync state transition %s -> %s", l.SyncState, next)
	}
	l.SyncState = next
	return nil
}

// NeedsFullSync reports whether the next run must paginate the whole catalog.
func (l *SourceAccountLink) NeedsFullSync() bool {
	switch l.SyncState {
	case StateNeverSynced, StateConsentChanged, StateInitialSyncing:
		return true
	case StateError:
		return l.LastVideoSyncAt == nil
	default:
		return false
	}
}

// Resuming reports whether a full sync was interrupted after at least one page
// and can continue from its cursor.
func (l *SourceAccountLink) Resuming() bool {
	if l.PageCursor == "" || l.LastSyncAt == nil {
		return false
	}
	return l.SyncState == StateInitialSyncing || (l.SyncState == StateError && l.LastVideoSyncAt == nil)
}

// DueForSync reports whether a scheduled tick should process the link.
func (l *SourceAccountLink) DueForSync(now time.Time) bool {
	if l.SyncState != StateError || l.NextAttemptAt == nil {
		return true
	}
	return !now.Before(*l.NextAttemptAt)
}

// Parked reports whether the link failed often enough to stop automatic retries.
func (l *SourceAccountLink) Parked(maxFailures int) bool {
	return maxFailures > 0 && l.SyncState == StateError && l.FailureCount >= maxFailures
}

// MarkFailed records a failed run and schedules the next attempt.
// A full pass that was pending or running stays pending: the watermark is
// dropped so the retry paginates again instead of fetching incrementally.
func (l *SourceAccountLink) MarkFailed(err error, now time.Time, backoff Backoff) {
	if l.SyncState == StateConsentChanged || l.SyncState == StateInitialSyncing {
		l.LastVideoSyncAt = nil
	}
	l.SyncState = StateError
	l.FailureCount++
	next := now.Add(backoff.Delay(l.FailureCount))
	l.NextAttemptAt = &next
	msg := err.Error()
	l.LastError = &msg
}

func (l *SourceAccountLink) clearFailures() {
	l.FailureCount = 0
	l.NextAttemptAt = nil
	l.LastError = nil
}

// StartFullSync resets pagination progress and enters INITIAL_SYNCING.
// While the pass runs, LastSyncAt holds its start so a pass resumed on a
// later tick still completes with the original watermark. The watermark is
// cleared until the pass completes, so a failure during the pass leaves the
// link in ERROR without one and the retry continues the full pass.
func (l *SourceAccountLink) StartFullSync(total int64, startedAt time.Time) error {
	if err := l.Transition(StateInitialSyncing); err != nil {
		return err
	}
	l.PageCursor = ""
	l.SyncedItemCount = 0
	l.TotalItemCount = total
	l.LastSyncAt = &startedAt
	l.LastVideoSyncAt = nil
	return nil
}

// PassStartedAt returns the start of the running full pass.
func (l *SourceAccountLink) PassStartedAt(fallback time.Time) time.Time {
	if l.SyncState == StateInitialSyncing && l.LastSyncAt != nil {
		return *l.LastSyncAt
	}
	return fallback
}

// CompleteSync enters INCREMENTAL with the watermark set to watermark.
func (l *SourceAccountLink) CompleteSync(watermark, now time.Time) error {
	if err := l.Transition(StateIncremental); err != nil {
		return err
	}
	l.PageCursor = ""
	l.LastVideoSyncAt = &watermark
	l.LastSyncAt = &now
	l.clearFailures()
	return nil
}

// MarkConsentChanged forces a new full pass on the next run. Dropping the
// watermark keeps the pass pending across failures: an ERROR link without a
// watermark is retried with a full pass.
func (l *SourceAccountLink) MarkConsentChanged() error {
	if l.SyncState == StateNeverSynced {
		return nil
	}
	if err := l.Transition(StateConsentChanged); err != nil {
		return err
	}
	l.PageCursor = ""
	l.SyncedItemCount = 0
	l.LastVideoSyncAt = nil
	return nil
}
