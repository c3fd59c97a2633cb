package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"creator_sync/internal/config"
	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
)

// RetentionService enforces the three retention policies over stored records.
type RetentionService struct {
	provider    string
	accounts    AccountStore
	store       RetentionStore
	consent     ConsentProvider
	invalidator ConsentInvalidator
	publisher   Publisher
	logger      *slog.Logger
	config      config.RetentionConfig

	pacer         *Pacer
	expiryRunning atomic.Bool
	windowRunning atomic.Bool
	now           func() time.Time
}

// NewRetentionService creates the enforcer for the accounts of one provider.
// invalidator and publisher may be nil.
func NewRetentionService(
	provider string,
	accounts AccountStore,
	store RetentionStore,
	consent ConsentProvider,
	invalidator ConsentInvalidator,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.RetentionConfig,
) *RetentionService {
	return &RetentionService{
		provider:    provider,
		accounts:    accounts,
		store:       store,
		consent:     consent,
		invalidator: invalidator,
		publisher:   publisher,
		logger:      logger.With("component", "retention", "provider", provider),
		config:      cfg,
		pacer:       NewPacer(cfg.AccountDelay),
		now:         time.Now,
	}
}

func (s *RetentionService) Name() string {
	return "retention-" + s.provider
}

// Run is the scheduler entry point: hard expiry first, then the rolling window.
func (s *RetentionService) Run(ctx context.Context) error {
	var errs []error
	if _, err := s.SweepExpired(ctx); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.SweepRollingWindow(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SweepExpired deletes expired snapshots taken without consent and renews
// expired authorized ones for another retention period.
func (s *RetentionService) SweepExpired(ctx context.Context) (*domain.ExpirySweepStats, error) {
	if !s.expiryRunning.CompareAndSwap(false, true) {
		metrics.SyncOverlapSkips.WithLabelValues("retention_expiry").Inc()
		s.logger.Warn("expiry sweep already running, skipping")
		return &domain.ExpirySweepStats{Skipped: true}, nil
	}
	defer s.expiryRunning.Store(false)

	start := s.now()
	stats := &domain.ExpirySweepStats{}

	deleted, err := s.store.DeleteExpiredUnauthorized(ctx, start)
	if err != nil {
		return stats, fmt.Errorf("delete expired records: %w", err)
	}
	stats.Deleted = deleted

	extended, err := s.store.ExtendExpiredAuthorized(ctx, start, domain.ExpiryFor(true, start))
	if err != nil {
		return stats, fmt.Errorf("extend authorized records: %w", err)
	}
	stats.Extended = extended

	stats.Duration = s.now().Sub(start)
	metrics.RetentionRecords.WithLabelValues(string(domain.PolicyHardExpiry), "deleted").Add(float64(deleted))
	metrics.RetentionRecords.WithLabelValues(string(domain.PolicyHardExpiry), "extended").Add(float64(extended))

	if deleted > 0 {
		s.publishPurge(ctx, &domain.PurgeEvent{Policy: domain.PolicyHardExpiry, Deleted: deleted, At: start})
	}

	s.logger.Info("expiry sweep completed",
		"deleted", stats.Deleted,
		"extended", stats.Extended,
		"duration", stats.Duration,
	)
	return stats, nil
}

// SweepAccount deletes the account's records published before the rolling
// window, whatever their expiry.
func (s *RetentionService) SweepAccount(ctx context.Context, accountID int64) (*domain.AccountRetention, error) {
	now := s.now()
	cutoff := now.Add(-s.config.RollingWindow)

	deleted, err := s.store.DeletePublishedBefore(ctx, accountID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete records before window: %w", err)
	}

	retained, err := s.store.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("count retained records: %w", err)
	}

	metrics.RetentionRecords.WithLabelValues(string(domain.PolicyRollingWindow), "deleted").Add(float64(deleted))
	if deleted > 0 {
		s.publishPurge(ctx, &domain.PurgeEvent{
			Policy:    domain.PolicyRollingWindow,
			AccountID: accountID,
			Deleted:   deleted,
			At:        now,
		})
	}

	return &domain.AccountRetention{AccountID: accountID, Deleted: deleted, Retained: retained}, nil
}

// SweepRollingWindow applies the rolling window to every account whose owner
// has not granted consent. A failing account does not stop the batch.
func (s *RetentionService) SweepRollingWindow(ctx context.Context) (*domain.RollingWindowStats, error) {
	if !s.windowRunning.CompareAndSwap(false, true) {
		metrics.SyncOverlapSkips.WithLabelValues("retention_window").Inc()
		s.logger.Warn("rolling window sweep already running, skipping")
		return &domain.RollingWindowStats{Skipped: true, SuccessRate: 100}, nil
	}
	defer s.windowRunning.Store(false)

	start := s.now()
	stats := &domain.RollingWindowStats{}

	links, err := s.accounts.ListByProvider(ctx, s.provider)
	if err != nil {
		return stats, fmt.Errorf("list accounts: %w", err)
	}

	for _, link := range links {
		authorized, err := s.consent.HasConsent(ctx, link.OwnerID)
		if err != nil {
			stats.Processed++
			stats.Errors++
			metrics.RetentionAccountErrors.Inc()
			s.logger.Error("failed to read consent", "account_id", link.ID, "error", err)
			continue
		}
		if authorized {
			continue
		}

		if err := s.pacer.Wait(ctx); err != nil {
			return stats, fmt.Errorf("pace retention sweep: %w", err)
		}

		stats.Processed++
		res, err := s.SweepAccount(ctx, link.ID)
		if err != nil {
			stats.Errors++
			metrics.RetentionAccountErrors.Inc()
			s.logger.Error("rolling window sweep failed", "account_id", link.ID, "error", err)
			continue
		}
		stats.Deleted += res.Deleted
		stats.Retained += res.Retained
	}

	stats.ComputeSuccessRate()
	stats.Duration = s.now().Sub(start)

	s.logger.Info("rolling window sweep completed",
		"processed", stats.Processed,
		"deleted", stats.Deleted,
		"retained", stats.Retained,
		"errors", stats.Errors,
		"success_rate", stats.SuccessRate,
		"duration", stats.Duration,
	)
	return stats, nil
}

// RevokeConsent immediately deletes every record of the account that was
// stored without consent.
func (s *RetentionService) RevokeConsent(ctx context.Context, accountID int64) (*domain.Revocation, error) {
	link, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(link.OwnerID)
	}
	return s.revoke(ctx, link.ID)
}

// RevokeOwnerConsent applies RevokeConsent to each of the owner's accounts.
func (s *RetentionService) RevokeOwnerConsent(ctx context.Context, ownerID string) ([]domain.Revocation, error) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ownerID)
	}

	links, err := s.accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list owner accounts: %w", err)
	}

	var (
		out  []domain.Revocation
		errs []error
	)
	for _, l := range links {
		rev, err := s.revoke(ctx, l.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("account %d: %w", l.ID, err))
			continue
		}
		out = append(out, *rev)
	}
	return out, errors.Join(errs...)
}

func (s *RetentionService) revoke(ctx context.Context, accountID int64) (*domain.Revocation, error) {
	deleted, err := s.store.DeleteUnauthorizedByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("delete unauthorized records: %w", err)
	}

	metrics.RetentionRecords.WithLabelValues(string(domain.PolicyRevocation), "deleted").Add(float64(deleted))
	s.publishPurge(ctx, &domain.PurgeEvent{
		Policy:    domain.PolicyRevocation,
		AccountID: accountID,
		Deleted:   deleted,
		At:        s.now(),
	})

	s.logger.Info("consent revoked, records purged", "account_id", accountID, "deleted", deleted)
	return &domain.Revocation{AccountID: accountID, Deleted: deleted}, nil
}

func (s *RetentionService) publishPurge(ctx context.Context, event *domain.PurgeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPurge(ctx, event); err != nil {
		s.logger.Warn("failed to publish purge event", "policy", event.Policy, "error", err)
	}
}
