// Package stats aggregates finished-session outcomes into per-profile
// lifetime statistics. It is pure: no I/O, no wall clock. Callers inject
// time and persist the resulting profile themselves.
package stats

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Lyn1194/hsk1-app/internal/models"
)

const dateLayout = "2006-01-02"

// NewProfile returns an empty stats profile with every level slot
// initialized.
func NewProfile() *models.StatsProfile {
	p := &models.StatsProfile{
		WordsLearned: []string{},
		LevelStats:   make(map[string]*models.LevelStat, models.LevelCount),
		DailyStats:   make(map[string]*models.DailyStat),
		Achievements: []string{},
	}
	Backfill(p)
	return p
}

// Backfill repairs a loaded profile: nil maps and slices from older blobs
// are allocated and every level gets a zeroed slot. Idempotent.
func Backfill(p *models.StatsProfile) {
	if p.WordsLearned == nil {
		p.WordsLearned = []string{}
	}
	if p.LevelStats == nil {
		p.LevelStats = make(map[string]*models.LevelStat, models.LevelCount)
	}
	if p.DailyStats == nil {
		p.DailyStats = make(map[string]*models.DailyStat)
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		if p.LevelStats[lvl.Key()] == nil {
			p.LevelStats[lvl.Key()] = &models.LevelStat{}
		}
	}
}

// Record folds one finished session into the profile: lifetime counters,
// the scoped level's counters and recomputed accuracy, today's daily
// bucket, the study streak, time spent, and the learned-word set. Newly
// unlocked achievements are appended and returned.
func Record(p *models.StatsProfile, outcome *models.SessionOutcome, now time.Time) []string {
	Backfill(p)

	p.TotalQuizzes++
	p.TotalCorrect += outcome.Correct
	p.TotalIncorrect += outcome.Incorrect
	p.TotalTimeSpent += outcome.Duration.Seconds()

	if ls := p.LevelStats[outcome.Scope]; ls != nil {
		ls.Correct += outcome.Correct
		ls.Incorrect += outcome.Incorrect
		ls.Accuracy = models.Accuracy(ls.Correct, ls.Incorrect)
		if outcome.Mode == models.ModeFinal && outcome.Incorrect == 0 && outcome.Correct > 0 {
			ls.Completed = true
		}
	}

	today := now.Format(dateLayout)
	day := p.DailyStats[today]
	if day == nil {
		day = &models.DailyStat{}
		p.DailyStats[today] = day
	}
	day.Quizzes++
	day.Accuracy = models.Accuracy(outcome.Correct, outcome.Incorrect)

	updateStreak(p, now)

	p.WordsLearned = lo.Uniq(append(p.WordsLearned, outcome.LearnedWordIDs...))
	sort.Strings(p.WordsLearned)

	return unlock(p, outcome)
}

// updateStreak advances the calendar-day streak: a repeat visit on the
// same day changes nothing, a visit the day after the last one extends
// the streak, anything else restarts it at 1.
func updateStreak(p *models.StatsProfile, now time.Time) {
	today := now.Format(dateLayout)
	if p.LastStudyDate == today {
		return
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if p.LastStudyDate == yesterday {
		p.StudyStreak++
	} else {
		p.StudyStreak = 1
	}
	p.LastStudyDate = today
}

// Overview derives the home-screen summary.
func Overview(p *models.StatsProfile) models.StatsOverview {
	return models.StatsOverview{
		WordsLearned:    len(p.WordsLearned),
		TotalQuizzes:    p.TotalQuizzes,
		OverallAccuracy: p.OverallAccuracy(),
		StudyStreak:     p.StudyStreak,
		LastStudyDate:   p.LastStudyDate,
		TotalTimeSpent:  p.TotalTimeSpent,
	}
}

// LevelBreakdown derives the per-level progress rows in ascending level
// order.
func LevelBreakdown(p *models.StatsProfile) []models.LevelProgress {
	Backfill(p)
	rows := make([]models.LevelProgress, 0, models.LevelCount)
	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		ls := p.LevelStats[lvl.Key()]
		rows = append(rows, models.LevelProgress{
			Level:     lvl,
			Correct:   ls.Correct,
			Incorrect: ls.Incorrect,
			Accuracy:  ls.Accuracy,
		})
	}
	return rows
}
