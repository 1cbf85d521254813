package engine

import (
	"time"

	"github.com/pileup/pileup/pkg/domain"
)

// plan target caps
const (
	maxDailyTargets    = 5
	maxWeekendTargets  = 3
	maxPurgeTargets    = 5
	maxSealTargets     = 3
	purgeUnplayedCount = 20
	purgeAge           = 2 * 365 * 24 * time.Hour
)

// Plans generates the prioritized list of gamified tasks for the backlog.
// The daily quick win and the streak challenge are unconditional, so the
// result is never empty. Target references point into the given snapshot and
// keep its insertion order, no re-ranking happens here.
func (e *Engine) Plans(backlog []domain.BacklogEntry) []domain.ActionPlan {
	entries := make([]*domain.BacklogEntry, len(backlog))
	for i := range backlog {
		entries[i] = &backlog[i]
	}

	var unplayed []*domain.BacklogEntry
	for _, en := range entries {
		if en.Status == domain.StatusUnplayed {
			unplayed = append(unplayed, en)
		}
	}

	now := e.now()
	plans := []domain.ActionPlan{{
		Title:       "Daily Quick Win",
		Description: "Play any unplayed game for at least 30 minutes today",
		Points:      20,
		Difficulty:  domain.DifficultyEasy,
		Type:        domain.PlanPlay,
		TargetGames: take(unplayed, maxDailyTargets),
	}}

	if wd := now.Weekday(); wd == time.Friday || wd == time.Saturday {
		var indies []*domain.BacklogEntry
		for _, en := range unplayed {
			if en.Game.HasGenre("Indie") {
				indies = append(indies, en)
			}
		}
		plans = append(plans, domain.ActionPlan{
			Title:       "Weekend Warrior",
			Description: "Finish a short indie game before Monday",
			Points:      50,
			Difficulty:  domain.DifficultyMedium,
			Type:        domain.PlanComplete,
			TargetGames: take(indies, maxWeekendTargets),
		})
	}

	if len(unplayed) > purgeUnplayedCount {
		var stale []*domain.BacklogEntry
		for _, en := range unplayed {
			if !en.PurchaseDate.IsZero() && now.Sub(en.PurchaseDate) > purgeAge {
				stale = append(stale, en)
			}
		}
		plans = append(plans, domain.ActionPlan{
			Title:       "The Great Purge",
			Description: "Grant amnesty to games you're never going to play",
			Points:      30,
			Difficulty:  domain.DifficultyEasy,
			Type:        domain.PlanAmnesty,
			TargetGames: take(stale, maxPurgeTargets),
		})
	}

	var untouched []*domain.BacklogEntry
	for _, en := range entries {
		if en.NeverTouched() {
			untouched = append(untouched, en)
		}
	}
	if len(untouched) > 0 {
		plans = append(plans, domain.ActionPlan{
			Title:       "Break the Seal",
			Description: "Launch a game you've literally never opened",
			Points:      25,
			Difficulty:  domain.DifficultyEasy,
			Type:        domain.PlanPlay,
			TargetGames: take(untouched, maxSealTargets),
		})
	}

	plans = append(plans, domain.ActionPlan{
		Title:       "Consistency Challenge",
		Description: "Play something from the pile three days in a row",
		Points:      40,
		Difficulty:  domain.DifficultyMedium,
		Type:        domain.PlanStreak,
	})

	return plans
}
