package domain

import "time"

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// LedgerEntry is one append-only quota accounting row.
type LedgerEntry struct {
	Provider  string
	Operation Operation
	UnitsCost int
	Timestamp time.Time
	Outcome   Outcome
	Latency   time.Duration
	Metadata  map[string]string
}

// Usage aggregates ledger rows of one provider over a window.
type Usage struct {
	Units    int64 `db:"units"`
	Requests int64 `db:"requests"`
	Errors   int64 `db:"errors"`
}

type Admission struct {
	Allowed     bool
	Remaining   int64
	UsedPercent float64
}

type WarningLevel string

const (
	WarningNormal   WarningLevel = "normal"
	WarningWarning  WarningLevel = "warning"
	WarningCritical WarningLevel = "critical"
)

func WarningLevelFor(usedPercent float64) WarningLevel {
	switch {
	case usedPercent >= 90:
		return WarningCritical
	case usedPercent >= 70:
		return WarningWarning
	default:
		return WarningNormal
	}
}

type QuotaSummary struct {
	Provider        string       `json:"provider"`
	DailyBudget     int64        `json:"daily_budget"`
	TotalUnits      int64        `json:"total_units"`
	TotalRequests   int64        `json:"total_requests"`
	ErrorCount      int64        `json:"error_count"`
	UsagePercentage float64      `json:"usage_percentage"`
	WarningLevel    WarningLevel `json:"warning_level"`
}
