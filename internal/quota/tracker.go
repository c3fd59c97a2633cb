// Package quota implements admission control and usage accounting against a
// provider's daily call-cost budget.
//
// Admission is optimistic: Admit reads the ledger and answers, nothing is
// reserved until Record appends the real call. That is only safe while a single
// process produces costed calls for a provider.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
)

type Tracker struct {
	ledger        LedgerStore
	budgets       map[string]int64
	defaultBudget int64
	window        time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

func NewTracker(
	ledger LedgerStore,
	budgets map[string]int64,
	defaultBudget int64,
	window time.Duration,
	logger *slog.Logger,
) *Tracker {
	return &Tracker{
		ledger:        ledger,
		budgets:       budgets,
		defaultBudget: defaultBudget,
		window:        window,
		logger:        logger.With("component", "quota"),
		now:           time.Now,
	}
}

func (t *Tracker) budget(provider string) int64 {
	if b, ok := t.budgets[provider]; ok && b > 0 {
		return b
	}
	return t.defaultBudget
}

// Admit answers whether a call costing cost units fits in the provider's
// remaining budget for the rolling window. A ledger read failure denies.
func (t *Tracker) Admit(ctx context.Context, provider string, cost int) (domain.Admission, error) {
	budget := t.budget(provider)

	usage, err := t.ledger.Usage(ctx, provider, t.now().Add(-t.window))
	if err != nil {
		metrics.QuotaAdmissions.WithLabelValues(provider, "error").Inc()
		return domain.Admission{}, fmt.Errorf("read quota usage: %w", err)
	}

	metrics.QuotaUnitsUsed.WithLabelValues(provider).Set(float64(usage.Units))

	adm := domain.Admission{
		Allowed:     usage.Units+int64(cost) <= budget,
		Remaining:   max(budget-usage.Units, 0),
		UsedPercent: percent(usage.Units, budget),
	}

	if adm.Allowed {
		metrics.QuotaAdmissions.WithLabelValues(provider, "allowed").Inc()
	} else {
		metrics.QuotaAdmissions.WithLabelValues(provider, "denied").Inc()
		t.logger.Warn("quota admission denied",
			"provider", provider,
			"cost", cost,
			"used", usage.Units,
			"budget", budget,
		)
	}

	return adm, nil
}

// Record appends a ledger entry. Failures are logged and dropped.
func (t *Tracker) Record(ctx context.Context, entry domain.LedgerEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = t.now()
	}

	if err := t.ledger.Append(ctx, &entry); err != nil {
		metrics.QuotaLedgerFailures.WithLabelValues(entry.Provider).Inc()
		t.logger.Error("failed to append quota ledger entry",
			"provider", entry.Provider,
			"operation", entry.Operation,
			"units", entry.UnitsCost,
			"error", err,
		)
	}
}

func (t *Tracker) Summary(ctx context.Context, provider string) (*domain.QuotaSummary, error) {
	budget := t.budget(provider)

	usage, err := t.ledger.Usage(ctx, provider, t.now().Add(-t.window))
	if err != nil {
		return nil, fmt.Errorf("read quota usage: %w", err)
	}

	used := percent(usage.Units, budget)

	return &domain.QuotaSummary{
		Provider:        provider,
		DailyBudget:     budget,
		TotalUnits:      usage.Units,
		TotalRequests:   usage.Requests,
		ErrorCount:      usage.Errors,
		UsagePercentage: used,
		WarningLevel:    domain.WarningLevelFor(used),
	}, nil
}

// Summaries returns a snapshot for every provider with a configured budget.
func (t *Tracker) Summaries(ctx context.Context) ([]domain.QuotaSummary, error) {
	providers := make([]string, 0, len(t.budgets))
	for p := range t.budgets {
		providers = append(providers, p)
	}
	sort.Strings(providers)

	out := make([]domain.QuotaSummary, 0, len(providers))
	for _, p := range providers {
		s, err := t.Summary(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("summary %s: %w", p, err)
		}
		out = append(out, *s)
	}
	return out, nil
}

func percent(used, budget int64) float64 {
	if budget <= 0 {
		return 100
	}
	return float64(used) / float64(budget) * 100
}
