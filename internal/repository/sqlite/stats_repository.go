package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/Lyn1194/hsk1-app/internal/logger"
	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) LoadProfileStats(ctx context.Context, profileID int64) (*models.StatsProfile, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("loading stats blob: profile_id=%d", profileID)

	var raw []byte
	err := r.db.QueryRowContext(ctx, `
SELECT data
FROM profile_stats
WHERE profile_id = ?
`, profileID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no stats yet: profile_id=%d", profileID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load stats blob: %v", err)
		return nil, err
	}

	var stats models.StatsProfile
	if err := json.Unmarshal(raw, &stats); err != nil {
		// A corrupt blob must not lock the profile out of its stats.
		// Treat it like a missing record; the next save overwrites it.
		log.Error("discarding corrupt stats blob for profile %d: %v", profileID, err)
		return nil, nil
	}
	return &stats, nil
}

func (r *statsRepository) SaveProfileStats(ctx context.Context, profileID int64, stats *models.StatsProfile) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("saving stats blob: profile_id=%d", profileID)

	raw, err := json.Marshal(stats)
	if err != nil {
		log.Error("failed to encode stats blob: %v", err)
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO profile_stats (profile_id, data, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(profile_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
`, profileID, raw)
	if err != nil {
		log.Error("failed to save stats blob: %v", err)
	}
	return err
}

func (r *statsRepository) DeleteProfileStats(ctx context.Context, profileID int64) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("deleting stats blob: profile_id=%d", profileID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM profile_stats WHERE profile_id = ?`, profileID)
	if err != nil {
		log.Error("failed to delete stats blob: %v", err)
	}
	return err
}

func (r *statsRepository) InsertSessionResult(ctx context.Context, result *models.SessionResult) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting session result: profile_id=%d, mode=%s, scope=%s", result.ProfileID, result.Mode, result.Scope)

	err := r.db.QueryRowContext(ctx, `
INSERT INTO session_results (profile_id, mode, scope, correct, incorrect, duration_seconds)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, created_at
`, result.ProfileID, result.Mode, result.Scope, result.Correct, result.Incorrect, result.DurationSeconds).
		Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		log.Error("failed to insert session result: %v", err)
	}
	return err
}

func (r *statsRepository) ListSessionResults(ctx context.Context, filter models.SessionResultFilter) ([]models.SessionResult, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("listing session results: profile_id=%d, mode=%s, scope=%s", filter.ProfileID, filter.Mode, filter.Scope)

	q := sq.Select("id", "profile_id", "mode", "scope", "correct", "incorrect", "duration_seconds", "created_at").
		From("session_results").
		Where(sq.Eq{"profile_id": filter.ProfileID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Mode != "" {
		q = q.Where(sq.Eq{"mode": filter.Mode})
	}
	if filter.Scope != "" {
		q = q.Where(sq.Eq{"scope": filter.Scope})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error("failed to build history query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query session results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.SessionResult
	for rows.Next() {
		var res models.SessionResult
		if err := rows.Scan(&res.ID, &res.ProfileID, &res.Mode, &res.Scope, &res.Correct, &res.Incorrect, &res.DurationSeconds, &res.CreatedAt); err != nil {
			log.Error("failed to scan session result row: %v", err)
			return nil, err
		}
		results = append(results, res)
	}

	log.Debug("found %d session results", len(results))
	return results, rows.Err()
}

func (r *statsRepository) CountSessionResults(ctx context.Context, profileID int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("counting session results: profile_id=%d", profileID)

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM session_results
WHERE profile_id = ?
`, profileID).Scan(&count)
	if err != nil {
		log.Error("failed to count session results: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) DeleteSessionResults(ctx context.Context, profileID int64) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("deleting session results: profile_id=%d", profileID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM session_results WHERE profile_id = ?`, profileID)
	if err != nil {
		log.Error("failed to delete session results: %v", err)
	}
	return err
}
