// Package stats computes aggregate pile statistics: the reality check, the
// shame score and behavioral insights. Like the engine it is a pure
// transformation of the backlog snapshot.
package stats

import (
	"fmt"

	"github.com/pileup/pileup/pkg/domain"
)

// completion estimate assumptions, shared with the engine's projection
const (
	hoursPerWeek     = 2.0
	averageGameHours = 20.0
)

// RealityCheck holds the brutal numbers about the pile
type RealityCheck struct {
	TotalGames           int     `json:"total_games"`
	UnplayedGames        int     `json:"unplayed_games"`
	CompletionYears      float64 `json:"completion_years"`
	MoneyWasted          float64 `json:"money_wasted"`
	MostExpensiveName    string  `json:"most_expensive_name,omitempty"`
	MostExpensivePrice   float64 `json:"most_expensive_price,omitempty"`
	OldestUnplayedName   string  `json:"oldest_unplayed_name,omitempty"`
	OldestUnplayedSince  string  `json:"oldest_unplayed_since,omitempty"`
}

// ShameScore is the aggregate penalty with its breakdown and rank
type ShameScore struct {
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
	Rank      string             `json:"rank"`
	Message   string             `json:"message"`
}

// Insights describes buying patterns and actionable suggestions
type Insights struct {
	BuyingPatterns      []string       `json:"buying_patterns"`
	GenrePreferences    map[string]int `json:"genre_preferences"`
	CompletionRate      float64        `json:"completion_rate"`
	MostNeglectedGenre  string         `json:"most_neglected_genre"`
	Recommendations     []string       `json:"recommendations"`
}

// Check computes the reality check for a backlog snapshot
func Check(backlog []domain.BacklogEntry) RealityCheck {
	rc := RealityCheck{TotalGames: len(backlog)}

	var oldest *domain.BacklogEntry
	for i := range backlog {
		en := &backlog[i]
		if en.Status != domain.StatusUnplayed {
			continue
		}
		rc.UnplayedGames++

		// purchase price with the current catalog price as fallback
		price := en.PurchasePrice
		if price == 0 {
			price = en.Game.Price
		}
		rc.MoneyWasted += price
		if price > rc.MostExpensivePrice {
			rc.MostExpensivePrice = price
			rc.MostExpensiveName = en.Game.Name
		}

		if !en.PurchaseDate.IsZero() && (oldest == nil || en.PurchaseDate.Before(oldest.PurchaseDate)) {
			oldest = en
		}
	}

	if oldest != nil {
		rc.OldestUnplayedName = oldest.Game.Name
		rc.OldestUnplayedSince = oldest.PurchaseDate.Format("2006-01-02")
	}

	rc.CompletionYears = float64(rc.UnplayedGames) * averageGameHours / (hoursPerWeek * 52)
	return rc
}

// Shame computes the shame score: 2 points per unplayed game, half a point
// per wasted dollar, up to 100 points for completion time and 3 extra points
// per never-launched game
func Shame(backlog []domain.BacklogEntry) ShameScore {
	rc := Check(backlog)

	neverTouched := 0
	for i := range backlog {
		if backlog[i].NeverTouched() {
			neverTouched++
		}
	}

	unplayedPenalty := float64(rc.UnplayedGames) * 2
	moneyPenalty := rc.MoneyWasted * 0.5
	timePenalty := rc.CompletionYears * 10
	if timePenalty > 100 {
		timePenalty = 100
	}
	zeroPenalty := float64(neverTouched) * 3

	total := unplayedPenalty + moneyPenalty + timePenalty + zeroPenalty

	rank, message := rankFor(total)
	return ShameScore{
		Score: total,
		Breakdown: map[string]float64{
			"unplayed_games":   unplayedPenalty,
			"money_wasted":     moneyPenalty,
			"time_to_complete": timePenalty,
			"never_played":     zeroPenalty,
		},
		Rank:    rank,
		Message: message,
	}
}

func rankFor(score float64) (rank, message string) {
	switch {
	case score < 50:
		return "Casual Collector", "You have a reasonable relationship with your backlog"
	case score < 100:
		return "Sale Victim", "Steam sales got the better of you"
	case score < 200:
		return "Serial Buyer", "You collect games like Pokemon cards"
	case score < 400:
		return "Pile Builder", "Your backlog has structural integrity"
	}
	return "The Pile Master", "Your pile of shame is visible from space"
}

// Analyze produces behavioral insights from the backlog
func Analyze(backlog []domain.BacklogEntry) Insights {
	res := Insights{
		BuyingPatterns:   []string{},
		GenrePreferences: map[string]int{},
		Recommendations:  []string{},
	}
	if len(backlog) == 0 {
		return res
	}

	bought := map[string]int{}
	played := map[string]int{}
	var genreOrder []string
	playedCount, indieCount, freeCount := 0, 0, 0
	unplayedValue := 0.0

	for i := range backlog {
		en := &backlog[i]
		for _, g := range en.Game.Genres {
			if _, seen := bought[g]; !seen {
				genreOrder = append(genreOrder, g)
			}
			bought[g]++
			if en.PlaytimeMinutes > 0 {
				played[g]++
			}
		}
		if en.PlaytimeMinutes > 0 {
			playedCount++
		}
		if en.Game.HasGenre("Indie") {
			indieCount++
		}
		if en.Game.IsFree {
			freeCount++
		}
		if en.Status == domain.StatusUnplayed {
			price := en.PurchasePrice
			if price == 0 {
				price = en.Game.Price
			}
			unplayedValue += price
		}
	}

	res.GenrePreferences = bought
	res.CompletionRate = float64(playedCount) / float64(len(backlog)) * 100

	// most neglected genre: biggest gap between bought and played,
	// first-seen order breaks ties
	maxGap := 0
	for _, g := range genreOrder {
		if gap := bought[g] - played[g]; gap > maxGap {
			maxGap = gap
			res.MostNeglectedGenre = g
		}
	}

	if bought["RPG"] > 3 && played["RPG"] < 2 {
		res.BuyingPatterns = append(res.BuyingPatterns, "You buy RPGs but rarely commit to their epic length")
	}
	if bought["Action"] > bought["Strategy"] && played["Strategy"] > played["Action"] {
		res.BuyingPatterns = append(res.BuyingPatterns, "You buy action games but actually prefer strategy")
	}
	if float64(indieCount)/float64(len(backlog)) > 0.7 {
		res.BuyingPatterns = append(res.BuyingPatterns, "You're an indie game collector with refined taste")
	}
	if freeCount > 10 {
		res.BuyingPatterns = append(res.BuyingPatterns, "You never miss a free game, do you?")
	}

	if res.CompletionRate < 20 {
		res.Recommendations = append(res.Recommendations, "Try finishing one game before buying three more")
	}
	if res.MostNeglectedGenre != "" {
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Stop buying %s games until you play the ones you have", res.MostNeglectedGenre))
	}
	if len(backlog) > 50 {
		res.Recommendations = append(res.Recommendations, "Consider the amnesty program for games you'll never play")
	}
	if unplayedValue > 100 {
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("You have $%.0f worth of unplayed games. That's a nice vacation!", unplayedValue))
	}

	return res
}
