// Package repository defines the data-access contracts the service layer
// depends on. Implementations live in subpackages; tests use generated
// mocks.
package repository

import (
	"context"
	"time"

	"github.com/Lyn1194/hsk1-app/internal/models"
)

// ProfileRepository handles profile data access
type ProfileRepository interface {
	Get(ctx context.Context, id int64) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, username string) (*models.Profile, error)
	UpdateSeen(ctx context.Context, id int64, t time.Time) error
	Delete(ctx context.Context, id int64) error
}

// StatsRepository persists per-profile aggregate statistics and the
// completed-session history.
type StatsRepository interface {
	// LoadProfileStats returns nil when the profile has no stats row yet.
	LoadProfileStats(ctx context.Context, profileID int64) (*models.StatsProfile, error)
	SaveProfileStats(ctx context.Context, profileID int64, stats *models.StatsProfile) error
	DeleteProfileStats(ctx context.Context, profileID int64) error

	InsertSessionResult(ctx context.Context, result *models.SessionResult) error
	ListSessionResults(ctx context.Context, filter models.SessionResultFilter) ([]models.SessionResult, error)
	CountSessionResults(ctx context.Context, profileID int64) (int, error)
	DeleteSessionResults(ctx context.Context, profileID int64) error
}
