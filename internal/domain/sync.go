package domain

import "time"

// SyncStats holds statistics about a batch sync run.
type SyncStats struct {
	RunID          string
	Provider       string
	Accounts       int
	Synced         int
	Errors         int
	QuotaDeferred  int
	BackoffSkipped int
	Locked         int
	Interrupted    int  // accounts left unprocessed by a shutdown
	Skipped        bool // another run was in flight
	Duration       time.Duration
}

// AccountSyncResult is the outcome of one account run.
type AccountSyncResult struct {
	AccountID int64
	FullSync  bool
	Created   int
	Refreshed int
	Invalid   int
	Pages     int
	State     SyncState
}

func (r *AccountSyncResult) Synced() int {
	return r.Created + r.Refreshed
}

// ManualSyncResult is returned to operator tooling instead of an error.
type ManualSyncResult struct {
	Success   bool      `json:"success"`
	AccountID int64     `json:"account_id"`
	Synced    int       `json:"synced"`
	State     SyncState `json:"state,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// ConsentChange is the message consumed when an owner grants or withdraws consent.
type ConsentChange struct {
	OwnerID string `json:"owner_id" validate:"required"`
	Granted bool   `json:"granted"`
}
