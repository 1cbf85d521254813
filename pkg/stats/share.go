package stats

import (
	"fmt"
	"time"
)

// Shareable is the payload of a public share card
type Shareable struct {
	UserName        string  `json:"user_name"`
	ShameScore      float64 `json:"shame_score"`
	Rank            string  `json:"rank"`
	TotalGames      int     `json:"total_games"`
	UnplayedGames   int     `json:"unplayed_games"`
	MoneyWasted     float64 `json:"money_wasted"`
	CompletionYears float64 `json:"completion_years"`
	FunFact         string  `json:"fun_fact"`
}

// BuildShareable assembles the share card from precomputed stats picking one
// fun fact through the provided random source
func BuildShareable(userName string, rc RealityCheck, shame ShameScore, now time.Time, randFn func(n int) int) Shareable {
	facts := []string{
		fmt.Sprintf("Could buy %.0f coffees with money spent on unplayed games", rc.MoneyWasted/5),
		fmt.Sprintf("Has enough unplayed games to last until the year %d", now.Year()+int(rc.CompletionYears)),
		fmt.Sprintf("Shame score of %.0f puts them in the '%s' category", shame.Score, shame.Rank),
		fmt.Sprintf("Only %d games standing between them and victory", rc.UnplayedGames),
		"Professional game collector, amateur game player",
		"Supports developers by buying games they'll never play",
	}

	return Shareable{
		UserName:        userName,
		ShameScore:      shame.Score,
		Rank:            shame.Rank,
		TotalGames:      rc.TotalGames,
		UnplayedGames:   rc.UnplayedGames,
		MoneyWasted:     rc.MoneyWasted,
		CompletionYears: rc.CompletionYears,
		FunFact:         facts[randFn(len(facts))],
	}
}
