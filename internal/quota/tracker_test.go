package quota

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"creator_sync/internal/domain"
	"creator_sync/internal/quota/mocks"
)

type TrackerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	ledger  *mocks.MockLedgerStore
	tracker *Tracker
	now     time.Time
}

func (s *TrackerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = mocks.NewMockLedgerStore(s.ctrl)
	s.now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.tracker = NewTracker(s.ledger, map[string]int64{"youtube": 100}, 50, 24*time.Hour, logger)
	s.tracker.now = func() time.Time { return s.now }
}

func (s *TrackerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) TestAdmit_WithinBudget() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "youtube", s.now.Add(-24*time.Hour)).Return(domain.Usage{Units: 60}, nil)

	adm, err := s.tracker.Admit(ctx, "youtube", 2)

	s.NoError(err)
	s.True(adm.Allowed)
	s.Equal(int64(40), adm.Remaining)
	s.InDelta(60.0, adm.UsedPercent, 0.001)
}

func (s *TrackerTestSuite) TestAdmit_ExactlyAtBudget() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "youtube", gomock.Any()).Return(domain.Usage{Units: 98}, nil)

	adm, err := s.tracker.Admit(ctx, "youtube", 2)

	s.NoError(err)
	s.True(adm.Allowed)
}

func (s *TrackerTestSuite) TestAdmit_DeniesOverBudget() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "youtube", gomock.Any()).Return(domain.Usage{Units: 99}, nil)

	adm, err := s.tracker.Admit(ctx, "youtube", 2)

	s.NoError(err)
	s.False(adm.Allowed)
	s.Equal(int64(1), adm.Remaining)
}

func (s *TrackerTestSuite) TestAdmit_UnknownProviderUsesDefaultBudget() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "vimeo", gomock.Any()).Return(domain.Usage{Units: 49}, nil)

	adm, err := s.tracker.Admit(ctx, "vimeo", 2)

	s.NoError(err)
	s.False(adm.Allowed)
}

func (s *TrackerTestSuite) TestAdmit_LedgerErrorDenies() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "youtube", gomock.Any()).Return(domain.Usage{}, errors.New("db down"))

	adm, err := s.tracker.Admit(ctx, "youtube", 1)

	s.Error(err)
	s.False(adm.Allowed)
}

func (s *TrackerTestSuite) TestRecord_AlwaysAppends() {
	ctx := context.Background()

	s.ledger.EXPECT().Append(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.LedgerEntry) error {
			s.Equal(domain.OutcomeError, e.Outcome)
			s.Equal(2, e.UnitsCost)
			s.Equal(s.now, e.Timestamp)
			return nil
		},
	)

	s.tracker.Record(ctx, domain.LedgerEntry{
		Provider:  "youtube",
		Operation: domain.OpListItems,
		UnitsCost: 2,
		Outcome:   domain.OutcomeError,
	})
}

func (s *TrackerTestSuite) TestRecord_SwallowsAppendFailure() {
	ctx := context.Background()
	s.ledger.EXPECT().Append(ctx, gomock.Any()).Return(errors.New("insert failed"))

	s.NotPanics(func() {
		s.tracker.Record(ctx, domain.LedgerEntry{Provider: "youtube", Operation: domain.OpAccountInfo, UnitsCost: 1})
	})
}

func (s *TrackerTestSuite) TestSummary_WarningLevels() {
	ctx := context.Background()

	tests := []struct {
		units int64
		level domain.WarningLevel
	}{
		{10, domain.WarningNormal},
		{75, domain.WarningWarning},
		{95, domain.WarningCritical},
	}

	for _, tt := range tests {
		s.ledger.EXPECT().Usage(ctx, "youtube", gomock.Any()).Return(domain.Usage{Units: tt.units, Requests: 7, Errors: 1}, nil)

		sum, err := s.tracker.Summary(ctx, "youtube")

		s.NoError(err)
		s.Equal(tt.level, sum.WarningLevel)
		s.Equal(tt.units, sum.TotalUnits)
		s.Equal(int64(7), sum.TotalRequests)
		s.Equal(int64(1), sum.ErrorCount)
		s.Equal(int64(100), sum.DailyBudget)
	}
}

func (s *TrackerTestSuite) TestSummaries() {
	ctx := context.Background()
	s.ledger.EXPECT().Usage(ctx, "youtube", gomock.Any()).Return(domain.Usage{Units: 20}, nil)

	out, err := s.tracker.Summaries(ctx)

	s.NoError(err)
	s.Len(out, 1)
	s.Equal("youtube", out[0].Provider)
	s.InDelta(20.0, out[0].UsagePercentage, 0.001)
}
