package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lyn1194/hsk1-app/internal/models"
	"github.com/Lyn1194/hsk1-app/internal/stats"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func quizOutcome(scope string, correct, incorrect int) *models.SessionOutcome {
	return &models.SessionOutcome{
		Mode:      models.ModeQuiz,
		Scope:     scope,
		Correct:   correct,
		Incorrect: incorrect,
		Duration:  3 * time.Minute,
	}
}

func TestNewProfile_AllLevelsInitialized(t *testing.T) {
	p := stats.NewProfile()

	require.Len(t, p.LevelStats, models.LevelCount)
	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		ls := p.LevelStats[lvl.Key()]
		require.NotNil(t, ls, "missing %s", lvl.Key())
		assert.Zero(t, ls.Correct)
		assert.False(t, ls.Completed)
	}
	assert.NotNil(t, p.WordsLearned)
	assert.NotNil(t, p.Achievements)
}

func TestBackfill_RepairsOlderBlobs(t *testing.T) {
	p := &models.StatsProfile{TotalQuizzes: 3}

	stats.Backfill(p)

	assert.Len(t, p.LevelStats, models.LevelCount)
	assert.NotNil(t, p.DailyStats)
	assert.Equal(t, 3, p.TotalQuizzes)
}

func TestRecord_Counters(t *testing.T) {
	p := stats.NewProfile()
	now := day("2026-08-31 10:00")

	stats.Record(p, quizOutcome("level2", 8, 2), now)

	assert.Equal(t, 1, p.TotalQuizzes)
	assert.Equal(t, 8, p.TotalCorrect)
	assert.Equal(t, 2, p.TotalIncorrect)
	assert.Equal(t, 80.0, p.OverallAccuracy())
	assert.Equal(t, 180.0, p.TotalTimeSpent)

	ls := p.LevelStats["level2"]
	assert.Equal(t, 8, ls.Correct)
	assert.Equal(t, 2, ls.Incorrect)
	assert.Equal(t, 80.0, ls.Accuracy)
	assert.False(t, ls.Completed, "quiz sessions never complete a level")

	// Accuracy is recomputed from lifetime counters, one decimal.
	stats.Record(p, quizOutcome("level2", 1, 2), now)
	assert.Equal(t, 69.2, p.LevelStats["level2"].Accuracy)
}

func TestRecord_NonLevelScopeSkipsLevelStats(t *testing.T) {
	p := stats.NewProfile()

	stats.Record(p, quizOutcome("all", 5, 0), day("2026-08-31 10:00"))

	for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
		assert.Zero(t, p.LevelStats[lvl.Key()].Correct)
	}
	assert.Equal(t, 5, p.TotalCorrect)
}

func TestRecord_PerfectFinalCompletesLevel(t *testing.T) {
	p := stats.NewProfile()
	outcome := &models.SessionOutcome{
		Mode:    models.ModeFinal,
		Scope:   "level1",
		Level:   1,
		Correct: 8,
	}

	stats.Record(p, outcome, day("2026-08-31 10:00"))
	assert.True(t, p.LevelStats["level1"].Completed)

	// A later imperfect final does not take the flag back.
	stats.Record(p, &models.SessionOutcome{Mode: models.ModeFinal, Scope: "level1", Correct: 6, Incorrect: 2}, day("2026-09-01 10:00"))
	assert.True(t, p.LevelStats["level1"].Completed)
}

func TestRecord_DailyStats(t *testing.T) {
	p := stats.NewProfile()

	stats.Record(p, quizOutcome("level1", 4, 0), day("2026-08-31 09:00"))
	stats.Record(p, quizOutcome("level1", 3, 1), day("2026-08-31 21:00"))
	stats.Record(p, quizOutcome("level1", 2, 2), day("2026-09-01 08:00"))

	require.Len(t, p.DailyStats, 2)
	assert.Equal(t, 2, p.DailyStats["2026-08-31"].Quizzes)
	assert.Equal(t, 75.0, p.DailyStats["2026-08-31"].Accuracy)
	assert.Equal(t, 1, p.DailyStats["2026-09-01"].Quizzes)
}

func TestRecord_Streak(t *testing.T) {
	p := stats.NewProfile()

	stats.Record(p, quizOutcome("level1", 1, 0), day("2026-08-29 10:00"))
	assert.Equal(t, 1, p.StudyStreak)

	// Same day again: unchanged.
	stats.Record(p, quizOutcome("level1", 1, 0), day("2026-08-29 22:00"))
	assert.Equal(t, 1, p.StudyStreak)

	// Next calendar day: extended.
	stats.Record(p, quizOutcome("level1", 1, 0), day("2026-08-30 07:00"))
	assert.Equal(t, 2, p.StudyStreak)
	assert.Equal(t, "2026-08-30", p.LastStudyDate)

	// Three-day gap: reset to 1.
	stats.Record(p, quizOutcome("level1", 1, 0), day("2026-09-02 10:00"))
	assert.Equal(t, 1, p.StudyStreak)
}

func TestRecord_WordsLearnedMergesUnique(t *testing.T) {
	p := stats.NewProfile()
	now := day("2026-08-31 10:00")

	stats.Record(p, &models.SessionOutcome{Mode: models.ModeQuiz, Scope: "level1", Correct: 2, LearnedWordIDs: []string{"l1-02", "l1-01"}}, now)
	stats.Record(p, &models.SessionOutcome{Mode: models.ModeQuiz, Scope: "level1", Correct: 2, LearnedWordIDs: []string{"l1-01", "l1-03"}}, now)

	assert.Equal(t, []string{"l1-01", "l1-02", "l1-03"}, p.WordsLearned)
	assert.True(t, p.HasLearned("l1-03"))
	assert.False(t, p.HasLearned("l1-04"))
}

func TestOverview(t *testing.T) {
	p := stats.NewProfile()
	stats.Record(p, quizOutcome("level1", 9, 1), day("2026-08-31 10:00"))

	o := stats.Overview(p)
	assert.Equal(t, 1, o.TotalQuizzes)
	assert.Equal(t, 90.0, o.OverallAccuracy)
	assert.Equal(t, 1, o.StudyStreak)
	assert.Equal(t, "2026-08-31", o.LastStudyDate)
}

func TestLevelBreakdown_Ordered(t *testing.T) {
	p := stats.NewProfile()
	stats.Record(p, quizOutcome("level7", 3, 1), day("2026-08-31 10:00"))

	rows := stats.LevelBreakdown(p)
	require.Len(t, rows, models.LevelCount)
	for i, row := range rows {
		assert.Equal(t, models.Level(i+1), row.Level)
	}
	assert.Equal(t, 3, rows[6].Correct)
	assert.Equal(t, 75.0, rows[6].Accuracy)
}
