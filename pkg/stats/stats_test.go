package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pileup/pileup/pkg/domain"
)

func TestCheck(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	backlog := []domain.BacklogEntry{
		{Status: domain.StatusUnplayed, PurchasePrice: 30, PurchaseDate: now.AddDate(-2, 0, 0),
			Game: domain.Game{Name: "Old Epic", Price: 60}},
		{Status: domain.StatusUnplayed, PurchaseDate: now.AddDate(-1, 0, 0),
			Game: domain.Game{Name: "Catalog Priced", Price: 40}}, // no purchase price, catalog fallback
		{Status: domain.StatusCompleted, PurchasePrice: 50, Game: domain.Game{Name: "Done"}},
	}

	rc := Check(backlog)
	assert.Equal(t, 3, rc.TotalGames)
	assert.Equal(t, 2, rc.UnplayedGames)
	assert.InDelta(t, 70.0, rc.MoneyWasted, 0.001) // 30 paid + 40 catalog, completed excluded
	assert.Equal(t, "Catalog Priced", rc.MostExpensiveName)
	assert.InDelta(t, 40.0, rc.MostExpensivePrice, 0.001)
	assert.Equal(t, "Old Epic", rc.OldestUnplayedName)
	assert.Equal(t, "2022-06-10", rc.OldestUnplayedSince)
	assert.InDelta(t, 2*20.0/104, rc.CompletionYears, 0.001)
}

func TestCheckEmpty(t *testing.T) {
	rc := Check(nil)
	assert.Equal(t, 0, rc.TotalGames)
	assert.Zero(t, rc.MoneyWasted)
	assert.Empty(t, rc.OldestUnplayedName)
}

func TestShame(t *testing.T) {
	// 10 unplayed at $10 each, all never touched
	var backlog []domain.BacklogEntry
	for i := 0; i < 10; i++ {
		backlog = append(backlog, domain.BacklogEntry{
			Status:        domain.StatusUnplayed,
			PurchasePrice: 10,
			Game:          domain.Game{Name: "g"},
		})
	}

	s := Shame(backlog)
	// 10*2 + 100*0.5 + 10*20/104*10 + 10*3 = 20 + 50 + 19.23 + 30
	assert.InDelta(t, 119.23, s.Score, 0.01)
	assert.Equal(t, "Serial Buyer", s.Rank)
	assert.InDelta(t, 20, s.Breakdown["unplayed_games"], 0.001)
	assert.InDelta(t, 50, s.Breakdown["money_wasted"], 0.001)
	assert.InDelta(t, 30, s.Breakdown["never_played"], 0.001)
}

func TestShameRanks(t *testing.T) {
	tests := []struct {
		score float64
		rank  string
	}{
		{0, "Casual Collector"},
		{49.9, "Casual Collector"},
		{50, "Sale Victim"},
		{100, "Serial Buyer"},
		{200, "Pile Builder"},
		{400, "The Pile Master"},
	}
	for _, tt := range tests {
		rank, msg := rankFor(tt.score)
		assert.Equal(t, tt.rank, rank)
		assert.NotEmpty(t, msg)
	}
}

func TestShameTimePenaltyCap(t *testing.T) {
	// enough unplayed games to push the time penalty well past the cap
	var backlog []domain.BacklogEntry
	for i := 0; i < 100; i++ {
		backlog = append(backlog, domain.BacklogEntry{Status: domain.StatusUnplayed, PlaytimeMinutes: 1})
	}

	s := Shame(backlog)
	assert.InDelta(t, 100, s.Breakdown["time_to_complete"], 0.001)
}

func TestAnalyze(t *testing.T) {
	var backlog []domain.BacklogEntry

	// five RPGs, one played
	for i := 0; i < 5; i++ {
		e := domain.BacklogEntry{Status: domain.StatusUnplayed, PurchasePrice: 30,
			Game: domain.Game{Genres: []string{"RPG"}}}
		if i == 0 {
			e.PlaytimeMinutes = 200
			e.Status = domain.StatusPlaying
		}
		backlog = append(backlog, e)
	}

	res := Analyze(backlog)
	assert.Contains(t, res.BuyingPatterns, "You buy RPGs but rarely commit to their epic length")
	assert.Equal(t, "RPG", res.MostNeglectedGenre)
	assert.InDelta(t, 20.0, res.CompletionRate, 0.001)
	assert.Equal(t, 5, res.GenrePreferences["RPG"])
	require.NotEmpty(t, res.Recommendations)
	assert.Contains(t, res.Recommendations[0], "Stop buying RPG games")
	// $120 of unplayed value triggers the vacation suggestion
	assert.Contains(t, res.Recommendations[len(res.Recommendations)-1], "unplayed games")
}

func TestAnalyzeEmpty(t *testing.T) {
	res := Analyze(nil)
	assert.Empty(t, res.BuyingPatterns)
	assert.Empty(t, res.Recommendations)
	assert.Zero(t, res.CompletionRate)
}

func TestBuildShareable(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	rc := RealityCheck{TotalGames: 10, UnplayedGames: 7, MoneyWasted: 100, CompletionYears: 1.3}
	shame := ShameScore{Score: 77, Rank: "Sale Victim"}

	s := BuildShareable("alex", rc, shame, now, func(int) int { return 0 })
	assert.Equal(t, "alex", s.UserName)
	assert.Equal(t, "Sale Victim", s.Rank)
	assert.Contains(t, s.FunFact, "20 coffees")

	s = BuildShareable("alex", rc, shame, now, func(n int) int { return n - 1 })
	assert.Contains(t, s.FunFact, "never play")
}
