package models

// LevelStat tracks lifetime answers for one level. Accuracy is always
// recomputed from the counters, never stored independently of them.
type LevelStat struct {
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
	Completed bool    `json:"completed"`
}

// DailyStat tracks activity for one calendar day.
type DailyStat struct {
	Quizzes  int     `json:"quizzes"`
	Accuracy float64 `json:"accuracy"`
}

// StatsProfile is the per-user cross-session history, persisted as an
// opaque JSON blob keyed by profile.
type StatsProfile struct {
	WordsLearned   []string              `json:"wordsLearned"`
	TotalQuizzes   int                   `json:"totalQuizzes"`
	TotalCorrect   int                   `json:"totalCorrect"`
	TotalIncorrect int                   `json:"totalIncorrect"`
	LevelStats     map[string]*LevelStat `json:"levelStats"`
	DailyStats     map[string]*DailyStat `json:"dailyStats"`
	StudyStreak    int                   `json:"studyStreak"`
	LastStudyDate  string                `json:"lastStudyDate"` // ISO date, "" = never studied
	Achievements   []string              `json:"achievements"`
	TotalTimeSpent float64               `json:"totalTimeSpent"` // seconds
}

// HasLearned reports whether the word id is in the learned set.
func (p *StatsProfile) HasLearned(wordID string) bool {
	for _, id := range p.WordsLearned {
		if id == wordID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the badge id has been unlocked.
func (p *StatsProfile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// OverallAccuracy returns lifetime accuracy as a 1-decimal percentage.
func (p *StatsProfile) OverallAccuracy() float64 {
	return Accuracy(p.TotalCorrect, p.TotalIncorrect)
}

// Accuracy computes correct/(correct+incorrect) as a percentage rounded to
// one decimal, or 0 when nothing has been answered.
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	return float64(int(pct*10+0.5)) / 10
}

// StatsOverview is the home-screen summary derived from a StatsProfile.
type StatsOverview struct {
	WordsLearned    int     `json:"words_learned"`
	TotalQuizzes    int     `json:"total_quizzes"`
	OverallAccuracy float64 `json:"overall_accuracy"`
	StudyStreak     int     `json:"study_streak"`
	LastStudyDate   string  `json:"last_study_date,omitempty"`
	TotalTimeSpent  float64 `json:"total_time_spent"`
}

// LevelProgress is one row of the per-level stats breakdown.
type LevelProgress struct {
	Level     Level   `json:"level"`
	Correct   int     `json:"correct"`
	Incorrect int     `json:"incorrect"`
	Accuracy  float64 `json:"accuracy"`
}

// Achievement is one badge in the achievements grid.
type Achievement struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}
