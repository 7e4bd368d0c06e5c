package services

import (
	"context"
	"time"

	"github.com/Lyn1194/hsk1-app/internal/errors"
	"github.com/Lyn1194/hsk1-app/internal/logger"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/repository"
	"github.com/Lyn1194/hsk1-app/internal/stats"
)

// StatsService handles statistics business logic: folding finished
// sessions into the per-profile aggregate and serving the derived views.
type StatsService interface {
	// RecordOutcome persists one finished session and returns any newly
	// unlocked achievement ids.
	RecordOutcome(ctx context.Context, profileID int64, outcome *models.SessionOutcome) ([]string, error)
	Overview(ctx context.Context, profileID int64) (*models.StatsOverview, error)
	Levels(ctx context.Context, profileID int64) ([]models.LevelProgress, error)
	Achievements(ctx context.Context, profileID int64) ([]models.Achievement, error)
	History(ctx context.Context, filter models.SessionResultFilter) ([]models.SessionResult, error)
	Reset(ctx context.Context, profileID int64) error
}

type statsService struct {
	statsRepo repository.StatsRepository
	clock     func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo, clock: time.Now}
}

// NewStatsServiceWithClock is used by tests to pin the aggregation date.
func NewStatsServiceWithClock(statsRepo repository.StatsRepository, clock func() time.Time) StatsService {
	return &statsService{statsRepo: statsRepo, clock: clock}
}

func (s *statsService) load(ctx context.Context, profileID int64) (*models.StatsProfile, error) {
	profile, err := s.statsRepo.LoadProfileStats(ctx, profileID)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return stats.NewProfile(), nil
	}
	stats.Backfill(profile)
	return profile, nil
}

func (s *statsService) RecordOutcome(ctx context.Context, profileID int64, outcome *models.SessionOutcome) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording outcome: profile_id=%d, mode=%s, scope=%s, correct=%d, incorrect=%d",
		profileID, outcome.Mode, outcome.Scope, outcome.Correct, outcome.Incorrect)

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}

	unlocked := stats.Record(profile, outcome, s.clock())

	if err := s.statsRepo.SaveProfileStats(ctx, profileID, profile); err != nil {
		log.Error("failed to save stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	result := &models.SessionResult{
		ProfileID:       profileID,
		Mode:            outcome.Mode,
		Scope:           outcome.Scope,
		Correct:         outcome.Correct,
		Incorrect:       outcome.Incorrect,
		DurationSeconds: outcome.Duration.Seconds(),
	}
	if err := s.statsRepo.InsertSessionResult(ctx, result); err != nil {
		log.Error("failed to insert session result: %v", err)
		return nil, errors.NewInternalError(err)
	}

	if len(unlocked) > 0 {
		log.Info("achievements unlocked: profile_id=%d, ids=%v", profileID, unlocked)
	}
	return unlocked, nil
}

func (s *statsService) Overview(ctx context.Context, profileID int64) (*models.StatsOverview, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	overview := stats.Overview(profile)
	return &overview, nil
}

func (s *statsService) Levels(ctx context.Context, profileID int64) ([]models.LevelProgress, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return stats.LevelBreakdown(profile), nil
}

func (s *statsService) Achievements(ctx context.Context, profileID int64) ([]models.Achievement, error) {
	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return stats.Achievements(profile), nil
}

func (s *statsService) History(ctx context.Context, filter models.SessionResultFilter) ([]models.SessionResult, error) {
	log := logger.FromContext(ctx)

	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 50
	}

	results, err := s.statsRepo.ListSessionResults(ctx, filter)
	if err != nil {
		log.Error("failed to list history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return results, nil
}

func (s *statsService) Reset(ctx context.Context, profileID int64) error {
	log := logger.FromContext(ctx)
	log.Info("resetting stats: profile_id=%d", profileID)

	if err := s.statsRepo.DeleteProfileStats(ctx, profileID); err != nil {
		return errors.NewInternalError(err)
	}
	if err := s.statsRepo.DeleteSessionResults(ctx, profileID); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
