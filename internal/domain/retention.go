package domain

import "time"

type RetentionPolicy string

const (
	PolicyHardExpiry    RetentionPolicy = "hard_expiry"
	PolicyRollingWindow RetentionPolicy = "rolling_window"
	PolicyRevocation    RetentionPolicy = "consent_revocation"
)

type ExpirySweepStats struct {
	Deleted  int64
	Extended int64
	Skipped  bool
	Duration time.Duration
}

type AccountRetention struct {
	AccountID int64
	Deleted   int64
	Retained  int64
}

type RollingWindowStats struct {
	Processed   int
	Deleted     int64
	Retained    int64
	Errors      int
	SuccessRate float64
	Skipped     bool
	Duration    time.Duration
}

// ComputeSuccessRate fills SuccessRate as the percentage of accounts swept without error.
func (s *RollingWindowStats) ComputeSuccessRate() {
	if s.Processed == 0 {
		s.SuccessRate = 100
		return
	}
	s.SuccessRate = float64(s.Processed-s.Errors) / float64(s.Processed) * 100
}

type Revocation struct {
	AccountID int64
	Deleted   int64
}

// PurgeEvent is published whenever a retention policy deletes records.
type PurgeEvent struct {
	Policy    RetentionPolicy `json:"policy"`
	AccountID int64           `json:"account_id,omitempty"`
	Deleted   int64           `json:"deleted"`
	At        time.Time       `json:"at"`
}
