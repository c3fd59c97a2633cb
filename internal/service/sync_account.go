package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
)

func (s *SyncService) syncAccount(ctx context.Context, link *domain.SourceAccountLink, logger *slog.Logger) (*domain.AccountSyncResult, error) {
	res := &domain.AccountSyncResult{AccountID: link.ID, FullSync: link.NeedsFullSync()}

	authorized, err := s.consent.HasConsent(ctx, link.OwnerID)
	if err != nil {
		return res, &domain.PersistenceError{Op: "read consent", Err: err}
	}

	if res.FullSync {
		err = s.fullSync(ctx, link, authorized, res, logger)
	} else {
		err = s.incrementalSync(ctx, link, authorized, res, logger)
	}
	res.State = link.SyncState
	return res, err
}

// fullSync paginates the whole catalog, persisting progress after every page
// so an interrupted pass resumes from its cursor.
func (s *SyncService) fullSync(ctx context.Context, link *domain.SourceAccountLink, authorized bool, res *domain.AccountSyncResult, logger *slog.Logger) error {
	if link.Resuming() {
		if err := link.Transition(domain.StateInitialSyncing); err != nil {
			return err
		}
		logger.Info("resuming full sync", "cursor", link.PageCursor, "synced", link.SyncedItemCount)
	} else {
		startedAt := s.now()
		info, err := s.fetchAccountInfo(ctx, link)
		if err != nil {
			return err
		}
		if err := link.StartFullSync(info.ItemCount, startedAt); err != nil {
			return err
		}
		if err := s.saveLink(ctx, link); err != nil {
			return err
		}
		logger.Info("starting full sync", "total_items", info.ItemCount)
	}

	for {
		if s.config.MaxPagesPerSync > 0 && res.Pages >= s.config.MaxPagesPerSync {
			logger.Info("page limit reached, full sync continues next run",
				"pages", res.Pages,
				"synced", link.SyncedItemCount,
				"total", link.TotalItemCount,
			)
			return nil
		}

		page, err := s.fetchPage(ctx, link, domain.PageRequest{
			ExternalID: link.ExternalID,
			PageSize:   s.config.FullPageSize,
			PageToken:  link.PageCursor,
		})
		if err != nil {
			return err
		}

		before := res.Synced()
		if err := s.upsertItems(ctx, link, page.Items, authorized, res, logger); err != nil {
			return err
		}
		res.Pages++

		link.SyncedItemCount += int64(res.Synced() - before)
		if page.TotalResults > 0 {
			link.TotalItemCount = page.TotalResults
		}
		link.PageCursor = page.NextPageToken

		if err := s.saveLink(ctx, link); err != nil {
			return err
		}

		logger.Debug("page synced",
			"page", res.Pages,
			"items", len(page.Items),
			"synced", link.SyncedItemCount,
			"total", link.TotalItemCount,
		)

		if page.NextPageToken == "" {
			break
		}
	}

	if err := link.CompleteSync(link.PassStartedAt(s.now()), s.now()); err != nil {
		return err
	}
	return s.saveLink(ctx, link)
}

// incrementalSync fetches one small page of items newer than the watermark.
// The watermark only advances on success.
func (s *SyncService) incrementalSync(ctx context.Context, link *domain.SourceAccountLink, authorized bool, res *domain.AccountSyncResult, logger *slog.Logger) error {
	startedAt := s.now()

	after := startedAt.Add(-s.config.BootstrapLookback)
	if link.LastVideoSyncAt != nil {
		after = *link.LastVideoSyncAt
	}

	page, err := s.fetchPage(ctx, link, domain.PageRequest{
		ExternalID:     link.ExternalID,
		PageSize:       s.config.IncrementalPageSize,
		PublishedAfter: &after,
	})
	if err != nil {
		return err
	}

	if err := s.upsertItems(ctx, link, page.Items, authorized, res, logger); err != nil {
		return err
	}
	res.Pages++
	link.SyncedItemCount += int64(res.Created)

	if err := link.CompleteSync(startedAt, s.now()); err != nil {
		return err
	}
	return s.saveLink(ctx, link)
}

func (s *SyncService) upsertItems(ctx context.Context, link *domain.SourceAccountLink, items []domain.Item, authorized bool, res *domain.AccountSyncResult, logger *slog.Logger) error {
	for i := range items {
		item := &items[i]

		isNew, err := s.upsertItem(ctx, link, item, authorized)
		if err != nil {
			if domain.IsValidation(err) {
				res.Invalid++
				metrics.SyncItems.WithLabelValues(link.Provider, "invalid").Inc()
				logger.Warn("skipping invalid item", "error", err)
				continue
			}
			return err
		}

		if isNew {
			res.Created++
			metrics.SyncItems.WithLabelValues(link.Provider, "created").Inc()
		} else {
			res.Refreshed++
			metrics.SyncItems.WithLabelValues(link.Provider, "refreshed").Inc()
		}
	}
	return nil
}

// upsertItem inserts a first-seen item or refreshes the stored record.
// (provider, external id) is the dedup key.
func (s *SyncService) upsertItem(ctx context.Context, link *domain.SourceAccountLink, item *domain.Item, authorized bool) (bool, error) {
	if err := s.validate.Struct(item); err != nil {
		return false, &domain.ValidationError{ExternalID: item.ExternalID, Err: err}
	}

	now := s.now()

	existing, err := s.records.FindByExternalID(ctx, link.Provider, item.ExternalID)
	if err != nil {
		return false, &domain.PersistenceError{Op: "find record", Err: err}
	}

	if existing == nil {
		rec := domain.NewContentRecord(link, item, authorized, now)
		id, created, err := s.records.Insert(ctx, rec)
		if err != nil {
			return false, &domain.PersistenceError{Op: "insert record", Err: err}
		}
		if created {
			rec.ID = id
			s.publish(ctx, rec, true)
			return true, nil
		}

		// lost the insert race, refresh the stored row instead
		existing, err = s.records.FindByExternalID(ctx, link.Provider, item.ExternalID)
		if err != nil {
			return false, &domain.PersistenceError{Op: "find record", Err: err}
		}
		if existing == nil {
			return false, &domain.PersistenceError{Op: "find record", Err: fmt.Errorf("record %d vanished after insert conflict", id)}
		}
	}

	existing.Refresh(item.Statistics, now)

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.records.UpdateStatistics(txCtx, existing.ID, existing.Statistics); err != nil {
			return fmt.Errorf("update statistics: %w", err)
		}
		if err := s.records.RefreshSyncTimestamp(txCtx, existing.ID, existing.LastSyncedAt, existing.ExpiresAt); err != nil {
			return fmt.Errorf("refresh sync timestamp: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, &domain.PersistenceError{Op: "refresh record", Err: err}
	}

	s.publish(ctx, existing, false)
	return false, nil
}

func (s *SyncService) fetchAccountInfo(ctx context.Context, link *domain.SourceAccountLink) (*domain.AccountInfo, error) {
	if err := s.admit(ctx, domain.OpAccountInfo); err != nil {
		return nil, err
	}

	started := s.now()
	info, err := s.provider.GetAccountInfo(ctx, link.ExternalID)
	s.record(ctx, domain.OpAccountInfo, link, started, err)
	if err != nil {
		return nil, fmt.Errorf("get account info: %w", err)
	}
	if info == nil {
		return nil, domain.ErrAccountGone
	}
	return info, nil
}

func (s *SyncService) fetchPage(ctx context.Context, link *domain.SourceAccountLink, req domain.PageRequest) (*domain.ItemsPage, error) {
	if err := s.admit(ctx, domain.OpListItems); err != nil {
		return nil, err
	}
	if err := s.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("pace provider call: %w", err)
	}

	started := s.now()
	page, err := s.provider.ListItemsPage(ctx, req)
	s.record(ctx, domain.OpListItems, link, started, err)
	if err != nil {
		return nil, fmt.Errorf("list items page: %w", err)
	}
	return page, nil
}

// admit must precede every costed provider call. A denial, or a ledger that
// cannot be read, skips the call.
func (s *SyncService) admit(ctx context.Context, op domain.Operation) error {
	adm, err := s.quota.Admit(ctx, s.provider.ID(), s.provider.Cost(op))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
	}
	if !adm.Allowed {
		return domain.ErrQuotaExceeded
	}
	return nil
}

func (s *SyncService) record(ctx context.Context, op domain.Operation, link *domain.SourceAccountLink, started time.Time, callErr error) {
	outcome := domain.OutcomeSuccess
	if callErr != nil {
		outcome = domain.OutcomeError
	}

	s.quota.Record(ctx, domain.LedgerEntry{
		Provider:  s.provider.ID(),
		Operation: op,
		UnitsCost: s.provider.Cost(op),
		Timestamp: started,
		Outcome:   outcome,
		Latency:   s.now().Sub(started),
		Metadata:  map[string]string{"account_id": strconv.FormatInt(link.ID, 10)},
	})
}

func (s *SyncService) saveLink(ctx context.Context, link *domain.SourceAccountLink) error {
	if err := s.accounts.Save(ctx, link); err != nil {
		return &domain.PersistenceError{Op: "save account", Err: err}
	}
	return nil
}

func (s *SyncService) publish(ctx context.Context, rec *domain.ContentRecord, isNew bool) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecord(ctx, rec, isNew); err != nil {
		s.logger.Warn("failed to publish record event",
			"external_id", rec.ExternalID,
			"error", err,
		)
	}
}
