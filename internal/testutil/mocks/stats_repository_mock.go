package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Lyn1194/hsk1-app/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) LoadProfileStats(ctx context.Context, profileID int64) (*models.StatsProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatsProfile), args.Error(1)
}

func (m *MockStatsRepository) SaveProfileStats(ctx context.Context, profileID int64, stats *models.StatsProfile) error {
	args := m.Called(ctx, profileID, stats)
	return args.Error(0)
}

func (m *MockStatsRepository) DeleteProfileStats(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

func (m *MockStatsRepository) InsertSessionResult(ctx context.Context, result *models.SessionResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockStatsRepository) ListSessionResults(ctx context.Context, filter models.SessionResultFilter) ([]models.SessionResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SessionResult), args.Error(1)
}

func (m *MockStatsRepository) CountSessionResults(ctx context.Context, profileID int64) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) DeleteSessionResults(ctx context.Context, profileID int64) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}
