package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"creator_sync/internal/config"
	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
)

// SyncService drives every linked account of one provider through the
// full/incremental sync state machine.
type SyncService struct {
	provider  ContentProvider
	accounts  AccountStore
	records   RecordStore
	consent   ConsentProvider
	quota     QuotaTracker
	locker    AccountLocker
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig

	pacer    *Pacer
	backoff  domain.Backoff
	validate *validator.Validate
	running  atomic.Bool
	now      func() time.Time
}

func NewSyncService(
	provider ContentProvider,
	accounts AccountStore,
	records RecordStore,
	consent ConsentProvider,
	quota QuotaTracker,
	locker AccountLocker,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		provider:  provider,
		accounts:  accounts,
		records:   records,
		consent:   consent,
		quota:     quota,
		locker:    locker,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("provider", provider.ID()),
		config:    cfg,
		pacer:     NewPacer(cfg.PageDelay),
		backoff: domain.Backoff{
			Initial: cfg.Retry.InitialBackoff,
			Max:     cfg.Retry.MaxBackoff,
		},
		validate: validator.New(),
		now:      time.Now,
	}
}

// Name identifies the job in scheduler logs.
func (s *SyncService) Name() string {
	return "sync-" + s.provider.ID()
}

// Run is the scheduler entry point.
func (s *SyncService) Run(ctx context.Context) error {
	_, err := s.Sync(ctx)
	return err
}

// Sync runs one batch over every account of the provider. Accounts are
// processed sequentially; a failing account is moved to ERROR and the batch
// moves on. A call that overlaps a running batch returns immediately.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	if !s.running.CompareAndSwap(false, true) {
		metrics.SyncOverlapSkips.WithLabelValues(s.Name()).Inc()
		s.logger.Warn("sync already running, skipping")
		return &domain.SyncStats{Provider: s.provider.ID(), Skipped: true}, nil
	}
	defer s.running.Store(false)

	startTime := s.now()
	stats := &domain.SyncStats{
		RunID:    uuid.NewString(),
		Provider: s.provider.ID(),
	}
	logger := s.logger.With("run_id", stats.RunID)

	links, err := s.accounts.ListByProvider(ctx, s.provider.ID())
	if err != nil {
		return stats, fmt.Errorf("list accounts: %w", err)
	}

	logger.Info("starting sync", "accounts", len(links))

	for i := range links {
		link := &links[i]

		// only shutdown cancels a run; the accounts not reached are left as they are
		if ctx.Err() != nil {
			stats.Interrupted = len(links) - i
			break
		}

		if link.FullSyncRequestedAt == nil && (link.Parked(s.config.Retry.MaxFailures) || !link.DueForSync(startTime)) {
			stats.BackoffSkipped++
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "backoff").Inc()
			logger.Debug("account in backoff",
				"account_id", link.ID,
				"failures", link.FailureCount,
				"next_attempt_at", link.NextAttemptAt,
			)
			continue
		}

		stats.Accounts++
		_, res, err := s.runLocked(ctx, link.ID, logger)

		switch {
		case err == nil:
			stats.Synced += res.Synced()
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "success").Inc()
		case ctx.Err() != nil:
			stats.Interrupted = len(links) - i
			if res != nil {
				stats.Synced += res.Synced()
			}
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "interrupted").Inc()
		case errors.Is(err, domain.ErrAccountBusy):
			stats.Locked++
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "locked").Inc()
		case errors.Is(err, domain.ErrQuotaExceeded):
			stats.QuotaDeferred++
			if res != nil {
				stats.Synced += res.Synced()
			}
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "quota_deferred").Inc()
		default:
			stats.Errors++
			metrics.SyncAccounts.WithLabelValues(stats.Provider, "error").Inc()
		}

		if stats.Interrupted > 0 {
			break
		}
	}

	stats.Duration = s.now().Sub(startTime)
	metrics.SyncDuration.WithLabelValues(stats.Provider).Observe(stats.Duration.Seconds())

	logger.Info("sync completed",
		"accounts", stats.Accounts,
		"synced", stats.Synced,
		"errors", stats.Errors,
		"quota_deferred", stats.QuotaDeferred,
		"backoff_skipped", stats.BackoffSkipped,
		"locked", stats.Locked,
		"interrupted", stats.Interrupted,
		"duration", stats.Duration,
	)

	return stats, nil
}

// TriggerManualSync runs the account routine outside the timer, ignoring
// backoff. Expected failures are reported in the result.
func (s *SyncService) TriggerManualSync(ctx context.Context, accountID int64) *domain.ManualSyncResult {
	out := &domain.ManualSyncResult{AccountID: accountID}
	logger := s.logger.With("run_id", uuid.NewString(), "trigger", "manual")

	link, res, err := s.runLocked(ctx, accountID, logger)
	if link != nil {
		out.State = link.SyncState
	}
	if res != nil {
		out.Synced = res.Synced()
	}
	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Success = true
	return out
}

// HandleConsentGranted forces a new full pass for every synced account of the
// owner so that records pick up the new consent snapshot. The request is
// stored first; an account busy with a sync picks it up on its next run.
func (s *SyncService) HandleConsentGranted(ctx context.Context, ownerID string) error {
	links, err := s.accounts.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("list owner accounts: %w", err)
	}

	var errs []error
	for _, l := range links {
		if l.Provider != s.provider.ID() {
			continue
		}
		if err := s.accounts.RequestFullSync(ctx, l.ID, s.now()); err != nil {
			errs = append(errs, fmt.Errorf("account %d: request full sync: %w", l.ID, err))
			continue
		}
		err := s.markConsentChanged(ctx, l.ID)
		switch {
		case errors.Is(err, domain.ErrAccountBusy):
			s.logger.Info("account busy, full sync deferred to next run", "account_id", l.ID)
		case err != nil:
			errs = append(errs, fmt.Errorf("account %d: %w", l.ID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *SyncService) markConsentChanged(ctx context.Context, accountID int64) error {
	release, ok, err := s.locker.TryLock(ctx, accountID)
	if err != nil {
		return fmt.Errorf("acquire account lock: %w", err)
	}
	if !ok {
		return domain.ErrAccountBusy
	}
	defer release()

	link, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return err
	}
	if err := s.applyFullSyncRequest(ctx, link); err != nil {
		return err
	}

	s.logger.Info("consent granted, full sync scheduled", "account_id", accountID, "state", link.SyncState)
	return nil
}

// applyFullSyncRequest moves the account to CONSENT_CHANGED when a full pass
// was requested. Must be called with the account lock held.
func (s *SyncService) applyFullSyncRequest(ctx context.Context, link *domain.SourceAccountLink) error {
	if link.FullSyncRequestedAt == nil {
		return nil
	}
	requestedAt := *link.FullSyncRequestedAt

	if err := link.MarkConsentChanged(); err != nil {
		return err
	}
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.accounts.Save(txCtx, link); err != nil {
			return fmt.Errorf("save account: %w", err)
		}
		if err := s.accounts.ClearFullSyncRequest(txCtx, link.ID, requestedAt); err != nil {
			return fmt.Errorf("clear full sync request: %w", err)
		}
		return nil
	})
	if err != nil {
		return &domain.PersistenceError{Op: "apply full sync request", Err: err}
	}

	link.FullSyncRequestedAt = nil
	return nil
}

// runLocked takes the advisory lock of the account, reloads it and runs one
// sync. Failures other than quota deferrals move the account to ERROR.
func (s *SyncService) runLocked(ctx context.Context, accountID int64, logger *slog.Logger) (*domain.SourceAccountLink, *domain.AccountSyncResult, error) {
	release, ok, err := s.locker.TryLock(ctx, accountID)
	if err != nil {
		return nil, nil, &domain.PersistenceError{Op: "acquire account lock", Err: err}
	}
	if !ok {
		logger.Info("account locked by another sync, skipping", "account_id", accountID)
		return nil, nil, domain.ErrAccountBusy
	}
	defer release()

	link, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	if link.Provider != s.provider.ID() {
		return link, nil, fmt.Errorf("account %d belongs to provider %q", link.ID, link.Provider)
	}
	if err := s.applyFullSyncRequest(ctx, link); err != nil {
		return link, nil, err
	}

	logger = logger.With("account_id", link.ID, "external_id", link.ExternalID)
	res, err := s.syncAccount(ctx, link, logger)
	if err == nil {
		logger.Info("account synced",
			"full", res.FullSync,
			"created", res.Created,
			"refreshed", res.Refreshed,
			"invalid", res.Invalid,
			"pages", res.Pages,
			"state", link.SyncState,
		)
		return link, res, nil
	}

	if errors.Is(err, domain.ErrQuotaExceeded) {
		logger.Warn("quota exhausted, account deferred", "state", link.SyncState, "pages", res.Pages)
		return link, res, err
	}

	// progress is saved page by page, so an interrupted pass resumes next run
	if ctx.Err() != nil {
		logger.Warn("account sync interrupted", "state", link.SyncState, "pages", res.Pages)
		return link, res, err
	}

	link.MarkFailed(err, s.now(), s.backoff)
	logger.Error("account sync failed",
		"error", err,
		"failures", link.FailureCount,
		"next_attempt_at", link.NextAttemptAt,
	)
	if saveErr := s.accounts.Save(ctx, link); saveErr != nil {
		logger.Error("failed to persist error state", "error", saveErr)
	}
	return link, res, err
}
