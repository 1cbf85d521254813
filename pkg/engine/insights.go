package engine

import (
	"fmt"

	"github.com/pileup/pileup/pkg/domain"
)

// completion projection assumptions: an average game takes 20 hours and the
// owner plays about 2 hours a week
const (
	assumedGameHours   = 20.0
	assumedWeeklyHours = 2.0
)

// PileAnalysis emits independent insights about buying habits. Each insight is
// optional and appears only when its condition holds, so the result may be
// empty but never nil.
func (e *Engine) PileAnalysis(backlog []domain.BacklogEntry) []string {
	insights := []string{}

	// genre histogram, first-seen order keeps ties deterministic
	counts := map[string]int{}
	var order []string
	for i := range backlog {
		for _, g := range backlog[i].Game.Genres {
			if _, seen := counts[g]; !seen {
				order = append(order, g)
			}
			counts[g]++
		}
	}
	topGenre, topCount := "", 0
	for _, g := range order {
		if counts[g] > topCount {
			topGenre, topCount = g, counts[g]
		}
	}
	if topGenre != "" {
		insights = append(insights, fmt.Sprintf("Your pile leans heavily into %s, %d games and counting", topGenre, topCount))
	}

	// bargain hunting: entries bought at under half the catalog price,
	// measured against entries where both prices are known
	priced, bargains := 0, 0
	for i := range backlog {
		en := &backlog[i]
		if en.PurchasePrice <= 0 || en.Game.Price <= 0 {
			continue
		}
		priced++
		if en.PurchasePrice < en.Game.Price*0.5 {
			bargains++
		}
	}
	if priced > 0 && float64(bargains)/float64(priced) > 0.6 {
		insights = append(insights, "You buy almost exclusively on deep sales, the discount is the game")
	}

	// naive completion horizon
	unplayed := 0
	for i := range backlog {
		if backlog[i].Status == domain.StatusUnplayed {
			unplayed++
		}
	}
	years := float64(unplayed) * assumedGameHours / (assumedWeeklyHours * 52)
	if years > 10 {
		insights = append(insights, fmt.Sprintf("At your pace, clearing the pile would take about %.0f years", years))
	}

	return insights
}
