package sync

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wellsync/internal/models"
	"wellsync/internal/providers"
	"wellsync/internal/structures"

	"github.com/google/uuid"
)

// MeasurementSource is the provider boundary: token lifecycle plus the
// measurement query.
type MeasurementSource interface {
	RequestToken(ctx context.Context, authCode string) (*models.TokenRecord, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.TokenRecord, error)
	GetMeasurements(ctx context.Context, accessToken string, since time.Time) ([]models.MeasureGroup, error)
}

// WellnessSink is the target boundary: one replace-by-id write per day.
type WellnessSink interface {
	UpdateWellness(ctx context.Context, rec *models.DayRecord) error
}

// Syncer sequences one run: resolve credentials, compute the watermark,
// fetch, aggregate, filter against the ledger, upload, persist the ledger.
// Credential, fetch and ledger-load failures abort the run; a single day's
// upload failure is logged and the day is left out of the ledger so the
// next run retries it.
type Syncer struct {
	flags      *structures.CliFlags
	source     MeasurementSource
	sink       WellnessSink
	tokens     TokenStoreInterface
	aggregator *Aggregator
	logger     providers.Logger

	ledgerPath string
	now        func() time.Time
}

func NewSyncer(flags *structures.CliFlags, source MeasurementSource, sink WellnessSink,
	tokens TokenStoreInterface, aggregator *Aggregator, logger providers.Logger) *Syncer {
	return &Syncer{
		flags:      flags,
		source:     source,
		sink:       sink,
		tokens:     tokens,
		aggregator: aggregator,
		logger:     logger,
		ledgerPath: LedgerFile,
		now:        time.Now,
	}
}

// Run executes one full sync pass. It returns nil when the terminal state
// is reached, even if individual days failed to upload.
func (s *Syncer) Run(ctx context.Context) error {
	runID := uuid.NewString()[:8]

	token, err := s.resolveCredentials(ctx)
	if err != nil {
		return err
	}

	since, err := s.watermark()
	if err != nil {
		return err
	}
	s.logger.Infof(providers.TypeSync, "[%s] Starting sync from %s", runID, since.Format(models.DateFormat))

	groups, err := s.source.GetMeasurements(ctx, token.AccessToken, since)
	if err != nil {
		return err
	}

	records := s.aggregator.Aggregate(groups)

	ledger, err := LoadLedger(s.ledgerPath)
	if err != nil {
		return fmt.Errorf("loading sync ledger: %w", err)
	}

	skipped := false
	for _, rec := range records {
		if ledger.Contains(rec.Date) && !s.flags.ForceResync {
			s.logger.Debugf(providers.TypeSync, "[%s] Skipping already synced day %s", runID, rec.Date)
			skipped = true
			continue
		}
		s.logger.Infof(providers.TypeSync, "[%s] Processing wellness data for %s: %v", runID, rec.Date, rec.Fields)
		if err := s.sink.UpdateWellness(ctx, rec); err != nil {
			s.logger.Errorf(providers.TypeSink, "[%s] Failed to upload wellness data for %s: %s", runID, rec.Date, err)
			continue
		}
		s.logger.Infof(providers.TypeSink, "[%s] Successfully uploaded wellness data for %s", runID, rec.Date)
		ledger.Add(rec.Date)
	}

	if skipped && !s.flags.DebugMode && !s.flags.ForceResync {
		s.logger.Infof(providers.TypeSync, "[%s] Some days were skipped because already synced (use --force-resync to sync everything)", runID)
	}

	if err := ledger.Save(s.ledgerPath); err != nil {
		return fmt.Errorf("saving sync ledger: %w", err)
	}

	s.logger.Infof(providers.TypeSync, "[%s] Sync completed successfully", runID)
	return nil
}

// resolveCredentials refreshes the stored token when one exists, otherwise
// bootstraps from the authorization code. The fresh record is persisted
// immediately so a crash later in the run loses no auth work.
func (s *Syncer) resolveCredentials(ctx context.Context) (*models.TokenRecord, error) {
	stored, err := s.tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("loading credential record: %w", err)
	}

	var fresh *models.TokenRecord
	switch {
	case stored != nil:
		fresh, err = s.source.RefreshToken(ctx, stored.RefreshToken)
	case s.flags.AuthCode != "":
		fresh, err = s.source.RequestToken(ctx, s.flags.AuthCode)
	default:
		return nil, errors.New("authorization code is required for initial authentication")
	}
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(fresh); err != nil {
		return nil, fmt.Errorf("saving credential record: %w", err)
	}
	return fresh, nil
}

// watermark is the lower fetch bound: the explicit start date when given,
// otherwise yesterday. It only bounds the fetch window; ledger membership
// is what prevents duplicate uploads.
func (s *Syncer) watermark() (time.Time, error) {
	if s.flags.StartDate != "" {
		t, err := time.ParseInLocation(models.DateFormat, s.flags.StartDate, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid start date %q, use YYYY-MM-DD", s.flags.StartDate)
		}
		return t, nil
	}
	return s.now().AddDate(0, 0, -1), nil
}
