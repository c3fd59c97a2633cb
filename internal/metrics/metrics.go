// Package metrics holds the Prometheus collectors of the sync engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Sync
	SyncAccounts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_accounts_total",
			Help: "Accounts processed by sync runs, by outcome",
		},
		[]string{"provider", "outcome"}, // success, error, quota_deferred, backoff, locked, interrupted
	)

	SyncItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_items_total",
			Help: "Provider items handled during sync, by operation",
		},
		[]string{"provider", "operation"}, // created, refreshed, invalid
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creator_sync_batch_duration_seconds",
			Help:    "Duration of batch sync runs",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
		},
		[]string{"provider"},
	)

	SyncOverlapSkips = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_overlap_skips_total",
			Help: "Runs skipped because a previous run of the same kind was in flight",
		},
		[]string{"kind"},
	)

	// Quota
	QuotaUnitsUsed = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "creator_sync_quota_units_used",
			Help: "Quota units consumed in the current rolling window",
		},
		[]string{"provider"},
	)

	QuotaAdmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_quota_admissions_total",
			Help: "Quota admission decisions",
		},
		[]string{"provider", "result"}, // allowed, denied, error
	)

	QuotaLedgerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_quota_ledger_failures_total",
			Help: "Ledger appends that failed and were dropped",
		},
		[]string{"provider"},
	)

	// Retention
	RetentionRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_retention_records_total",
			Help: "Records deleted or extended by retention policies",
		},
		[]string{"policy", "action"}, // action: deleted, extended
	)

	RetentionAccountErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "creator_sync_retention_account_errors_total",
			Help: "Accounts whose rolling-window sweep failed",
		},
	)

	// Consent
	ConsentCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_consent_cache_lookups_total",
			Help: "Consent lookups served by the cache, by result",
		},
		[]string{"result"}, // hit, miss
	)

	ConsentChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_consent_changes_total",
			Help: "Consent change messages consumed, by outcome",
		},
		[]string{"granted", "outcome"}, // outcome: ok, error, invalid
	)

	// Provider circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "creator_sync_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_circuit_breaker_requests_total",
			Help: "Requests through the provider circuit breaker, by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	// Scheduler
	SchedulerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creator_sync_scheduler_runs_total",
			Help: "Scheduled job runs, by outcome",
		},
		[]string{"job", "outcome"}, // ok, error, panic
	)
)
