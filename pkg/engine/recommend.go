package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/pileup/pileup/pkg/domain"
)

// category caps
const (
	maxQuickWins       = 3
	maxRedemptionArcs  = 2
	maxHiddenGems      = 2
	maxMercyKills      = 3
	maxWeekendProjects = 2
)

// age thresholds, calendar-free approximations
const (
	hiddenGemAge      = 6 * 30 * 24 * time.Hour  // six 30-day months
	mercyKillAge      = 3 * 365 * 24 * time.Hour // three 365-day years
	weekendProjectAge = 30 * 24 * time.Hour
)

// genres considered short enough for a quick win
var quickWinGenres = []string{"Indie", "Puzzle", "Platformer", "Arcade"}

// Recommend derives recommendations from the backlog snapshot. The output is
// the concatenation of five independent category passes, not a global sort;
// an entry may legitimately show up in more than one category. Results depend
// on the current time and must be recomputed on every call.
func (e *Engine) Recommend(backlog []domain.BacklogEntry) []domain.Recommendation {
	entries := make([]*domain.BacklogEntry, len(backlog))
	for i := range backlog {
		entries[i] = &backlog[i]
	}

	now := e.now()
	res := []domain.Recommendation{}
	res = append(res, quickWins(entries)...)
	res = append(res, redemptionArcs(entries)...)

	gems := hiddenGems(entries, now)
	res = append(res, gems...)

	gemSet := make(map[*domain.BacklogEntry]bool, len(gems))
	for _, g := range gems {
		gemSet[g.Entry] = true
	}
	res = append(res, mercyKills(entries, now, gemSet)...)
	res = append(res, weekendProjects(entries, now)...)

	return res
}

// boost returns the rating bonus added to the base confidence of scored passes
func boost(e *domain.BacklogEntry) float64 {
	switch r := e.Game.RatingPercent; {
	case r >= 90:
		return 0.30
	case r >= 85:
		return 0.20
	case r >= 70:
		return 0.10
	}
	return 0
}

// rank orders entries by rating descending, then by purchase date ascending.
// A missing purchase date is the zero time and therefore sorts first; this is
// a documented quirk kept for reproducibility, not a bug to fix.
func rank(entries []*domain.BacklogEntry) []*domain.BacklogEntry {
	ranked := make([]*domain.BacklogEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Game.RatingPercent != ranked[j].Game.RatingPercent {
			return ranked[i].Game.RatingPercent > ranked[j].Game.RatingPercent
		}
		return ranked[i].PurchaseDate.Before(ranked[j].PurchaseDate)
	})
	return ranked
}

func quickWins(entries []*domain.BacklogEntry) []domain.Recommendation {
	var candidates []*domain.BacklogEntry
	for _, e := range entries {
		if e.Status != domain.StatusUnplayed {
			continue
		}
		for _, g := range quickWinGenres {
			if e.Game.HasGenre(g) {
				candidates = append(candidates, e)
				break
			}
		}
	}

	var res []domain.Recommendation
	for _, e := range take(rank(candidates), maxQuickWins) {
		value := 0.70 + boost(e)
		if value > 1.0 {
			value = 1.0
		}
		reason := "short and snappy, you could finish this one tonight"
		if e.Game.RatingPercent >= 85 {
			reason += fmt.Sprintf(", highly rated at %d%%", e.Game.RatingPercent)
		}
		res = append(res, domain.Recommendation{
			Entry:      e,
			Reason:     reason,
			Confidence: confidenceFrom(value, 0.85, 0.60),
			Category:   domain.CategoryQuickWin,
		})
	}
	return res
}

func redemptionArcs(entries []*domain.BacklogEntry) []domain.Recommendation {
	var candidates []*domain.BacklogEntry
	for _, e := range entries {
		if e.Status == domain.StatusAbandoned || (e.PlaytimeMinutes > 0 && e.PlaytimeMinutes < 120) {
			candidates = append(candidates, e)
		}
	}

	var res []domain.Recommendation
	for _, e := range take(rank(candidates), maxRedemptionArcs) {
		res = append(res, domain.Recommendation{
			Entry:      e,
			Reason:     fmt.Sprintf("you put in %d minutes and walked away, maybe it deserves another chance", e.PlaytimeMinutes),
			Confidence: confidenceFrom(0.50+boost(e), 0.75, 0.50),
			Category:   domain.CategoryRedemptionArc,
		})
	}
	return res
}

func hiddenGems(entries []*domain.BacklogEntry, now time.Time) []domain.Recommendation {
	var candidates []*domain.BacklogEntry
	for _, e := range entries {
		if e.Status == domain.StatusUnplayed && e.Game.RatingPercent >= 85 && e.AgeAt(now) >= hiddenGemAge && !e.PurchaseDate.IsZero() {
			candidates = append(candidates, e)
		}
	}

	// rating only, purchase date does not participate here
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Game.RatingPercent > candidates[j].Game.RatingPercent
	})

	var res []domain.Recommendation
	for _, e := range take(candidates, maxHiddenGems) {
		months := int(now.Sub(e.PurchaseDate).Hours() / 24 / 30)
		res = append(res, domain.Recommendation{
			Entry:      e,
			Reason:     fmt.Sprintf("rated %d%% and gathering dust for %d months", e.Game.RatingPercent, months),
			Confidence: domain.ConfidenceHigh,
			Category:   domain.CategoryHiddenGem,
		})
	}
	return res
}

func mercyKills(entries []*domain.BacklogEntry, now time.Time, gems map[*domain.BacklogEntry]bool) []domain.Recommendation {
	var res []domain.Recommendation
	for _, e := range entries {
		if len(res) >= maxMercyKills {
			break
		}
		if e.Status != domain.StatusUnplayed || gems[e] || e.PurchaseDate.IsZero() {
			continue
		}
		if now.Sub(e.PurchaseDate) <= mercyKillAge {
			continue
		}
		years := int(now.Sub(e.PurchaseDate).Hours() / 24 / 365)
		res = append(res, domain.Recommendation{
			Entry:      e,
			Reason:     fmt.Sprintf("%d years unplayed, time to admit it's never happening and grant amnesty", years),
			Confidence: domain.ConfidenceHigh,
			Category:   domain.CategoryMercyKill,
		})
	}
	return res
}

func weekendProjects(entries []*domain.BacklogEntry, now time.Time) []domain.Recommendation {
	var res []domain.Recommendation
	for _, e := range entries {
		if len(res) >= maxWeekendProjects {
			break
		}
		if e.Status != domain.StatusUnplayed || e.PurchaseDate.IsZero() {
			continue
		}
		if now.Sub(e.PurchaseDate) >= weekendProjectAge {
			continue
		}
		res = append(res, domain.Recommendation{
			Entry:      e,
			Reason:     "bought less than a month ago, start it while the excitement is fresh",
			Confidence: domain.ConfidenceMedium,
			Category:   domain.CategoryWeekendProject,
		})
	}
	return res
}

// confidenceFrom maps a numeric confidence to the enum using pass-specific
// thresholds, boundaries inclusive
func confidenceFrom(value, high, medium float64) domain.Confidence {
	switch {
	case value >= high:
		return domain.ConfidenceHigh
	case value >= medium:
		return domain.ConfidenceMedium
	}
	return domain.ConfidenceLow
}

func take(entries []*domain.BacklogEntry, n int) []*domain.BacklogEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
