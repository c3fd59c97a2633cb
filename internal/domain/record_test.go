package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryFor(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, 365), ExpiryFor(true, now))
	assert.Equal(t, now.AddDate(0, 0, 30), ExpiryFor(false, now))
}

func TestContentRecord_NewAndRefresh(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	link := &SourceAccountLink{ID: 7, Provider: "youtube"}
	item := &Item{ExternalID: "vid-1", Title: "first", PublishedAt: created.Add(-time.Hour), Statistics: Statistics{Views: 10}}

	rec := NewContentRecord(link, item, false, created)

	assert.Equal(t, int64(7), rec.SourceAccountID)
	assert.Equal(t, "youtube", rec.Provider)
	assert.False(t, rec.IsAuthorizedData)
	assert.Equal(t, rec.LastSyncedAt.Add(UnauthorizedRetention), rec.ExpiresAt)

	later := created.Add(48 * time.Hour)
	rec.Refresh(Statistics{Views: 99, Likes: 3}, later)

	assert.Equal(t, int64(99), rec.Views)
	assert.Equal(t, later, rec.LastSyncedAt)
	assert.Equal(t, rec.LastSyncedAt.Add(UnauthorizedRetention), rec.ExpiresAt)
	assert.False(t, rec.IsAuthorizedData)
}

func TestWarningLevelFor(t *testing.T) {
	assert.Equal(t, WarningNormal, WarningLevelFor(0))
	assert.Equal(t, WarningNormal, WarningLevelFor(69.9))
	assert.Equal(t, WarningWarning, WarningLevelFor(70))
	assert.Equal(t, WarningWarning, WarningLevelFor(89.99))
	assert.Equal(t, WarningCritical, WarningLevelFor(90))
	assert.Equal(t, WarningCritical, WarningLevelFor(120))
}

func TestRollingWindowStats_ComputeSuccessRate(t *testing.T) {
	s := &RollingWindowStats{Processed: 4, Errors: 1}
	s.ComputeSuccessRate()
	assert.InDelta(t, 75.0, s.SuccessRate, 0.001)

	empty := &RollingWindowStats{}
	empty.ComputeSuccessRate()
	assert.InDelta(t, 100.0, empty.SuccessRate, 0.001)
}
