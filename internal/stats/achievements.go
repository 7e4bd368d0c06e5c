package stats

import (
	"github.com/Lyn1194/hsk1-app/internal/models"
)

// rule is one achievement with its unlock predicate. Predicates see the
// profile after the outcome has been folded in, plus the outcome itself
// for single-session conditions.
type rule struct {
	id      string
	name    string
	icon    string
	unlocks func(p *models.StatsProfile, outcome *models.SessionOutcome) bool
}

// speedRunSeconds is the wall-clock bound for the speed_demon badge.
const speedRunSeconds = 60

var rules = []rule{
	{
		id:   "beginner",
		name: "Beginner",
		icon: "🏅",
		unlocks: func(p *models.StatsProfile, _ *models.SessionOutcome) bool {
			return len(p.WordsLearned) >= 10
		},
	},
	{
		id:   "intermediate",
		name: "Intermediate",
		icon: "🥈",
		unlocks: func(p *models.StatsProfile, _ *models.SessionOutcome) bool {
			return len(p.WordsLearned) >= 40
		},
	},
	{
		id:   "master",
		name: "Master",
		icon: "🏆",
		unlocks: func(p *models.StatsProfile, _ *models.SessionOutcome) bool {
			for lvl := models.Level(1); lvl <= models.LevelCount; lvl++ {
				ls := p.LevelStats[lvl.Key()]
				if ls == nil || !ls.Completed {
					return false
				}
			}
			return true
		},
	},
	{
		id:   "dedicated",
		name: "Dedicated Learner",
		icon: "🔥",
		unlocks: func(p *models.StatsProfile, _ *models.SessionOutcome) bool {
			return p.StudyStreak >= 7
		},
	},
	{
		id:   "speed_demon",
		name: "Speed Demon",
		icon: "⚡",
		unlocks: func(_ *models.StatsProfile, outcome *models.SessionOutcome) bool {
			return outcome != nil &&
				outcome.Correct >= 5 &&
				outcome.Incorrect == 0 &&
				outcome.Duration.Seconds() < speedRunSeconds
		},
	},
}

// unlock appends every newly satisfied achievement to the profile and
// returns the ids unlocked by this call. Already-held badges never fire
// again.
func unlock(p *models.StatsProfile, outcome *models.SessionOutcome) []string {
	var unlocked []string
	for _, r := range rules {
		if p.HasAchievement(r.id) {
			continue
		}
		if r.unlocks(p, outcome) {
			p.Achievements = append(p.Achievements, r.id)
			unlocked = append(unlocked, r.id)
		}
	}
	return unlocked
}

// Achievements renders the full badge grid with unlock state.
func Achievements(p *models.StatsProfile) []models.Achievement {
	grid := make([]models.Achievement, 0, len(rules))
	for _, r := range rules {
		grid = append(grid, models.Achievement{
			ID:       r.id,
			Name:     r.name,
			Icon:     r.icon,
			Unlocked: p.HasAchievement(r.id),
		})
	}
	return grid
}
