package engine

import (
	"fmt"

	"github.com/pileup/pileup/pkg/domain"
)

// escalation thresholds for greeting overrides
const (
	spaceVisibleUnplayed  = 100
	addictionNeverTouched = 50
	mortgageSpend         = 1000.0
)

// Greeting picks a situational greeting for the backlog. An empty backlog
// always yields the same canned message. Escalating overrides are checked in
// order and short-circuit; otherwise one of five templated messages is chosen
// uniformly at random.
func (e *Engine) Greeting(backlog []domain.BacklogEntry, userName string) domain.Message {
	if len(backlog) == 0 {
		return domain.Message{
			Text:    "Your pile is empty",
			Subtext: "Either you're incredibly disciplined or you haven't imported your library yet.",
			Emoji:   "✨",
		}
	}

	var unplayed, neverTouched int
	var totalSpend float64
	var oldest *domain.BacklogEntry
	for i := range backlog {
		en := &backlog[i]
		if en.Status == domain.StatusUnplayed {
			unplayed++
			// zero purchase date sorts as the minimum, so an entry with an
			// unknown date may win "oldest"; kept as-is on purpose
			if oldest == nil || en.PurchaseDate.Before(oldest.PurchaseDate) {
				oldest = en
			}
		}
		if en.NeverTouched() {
			neverTouched++
		}
		totalSpend += en.PurchasePrice
	}

	switch {
	case unplayed > spaceVisibleUnplayed:
		return domain.Message{
			Text:    fmt.Sprintf("%d unplayed games. Your pile is visible from space.", unplayed),
			Subtext: "Astronauts use it for navigation.",
			Emoji:   "🛰️",
		}
	case neverTouched > addictionNeverTouched:
		return domain.Message{
			Text:    fmt.Sprintf("%d games you have never even launched.", neverTouched),
			Subtext: "At this point it's not a hobby, it's an acquisition addiction.",
			Emoji:   "🚨",
		}
	case totalSpend > mortgageSpend:
		return domain.Message{
			Text:    fmt.Sprintf("$%.0f spent on games you haven't played.", totalSpend),
			Subtext: "That's a mortgage payment sitting in your library.",
			Emoji:   "💸",
		}
	}

	name := userName
	if name == "" {
		name = "pile keeper"
	}

	oldestName := "nothing"
	if oldest != nil {
		oldestName = oldest.Game.Name
	}

	pool := []domain.Message{
		{
			Text:    fmt.Sprintf("%s, %s", e.timeOfDay(), name),
			Subtext: fmt.Sprintf("%d unplayed games are waiting. No pressure.", unplayed),
			Emoji:   "👋",
		},
		{
			Text:    fmt.Sprintf("The pile stands at %d unplayed games", unplayed),
			Subtext: fmt.Sprintf("Oldest resident: %s.", oldestName),
			Emoji:   "🗻",
		},
		{
			Text:    fmt.Sprintf("You've invested $%.0f in this collection", totalSpend),
			Subtext: "Playing them is optional, apparently.",
			Emoji:   "🏦",
		},
		{
			Text:    fmt.Sprintf("%d games still in shrink wrap", neverTouched),
			Subtext: "Digitally speaking.",
			Emoji:   "📦",
		},
		{
			Text:    fmt.Sprintf("Welcome back, %s", name),
			Subtext: fmt.Sprintf("%s has been waiting patiently for you.", oldestName),
			Emoji:   "🎮",
		},
	}

	return pool[e.rand(len(pool))]
}

// timeOfDay returns the greeting phrase for the current hour bucket
func (e *Engine) timeOfDay() string {
	switch h := e.now().Hour(); {
	case h < 6:
		return "Up before dawn"
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	case h < 22:
		return "Good evening"
	}
	return "Burning the midnight oil"
}

// motivational phrase pools keyed by action
var motivationPools = map[string][]string{
	"play": {
		"The hardest part is pressing launch.",
		"Thirty minutes. That's all it asks.",
		"That game isn't going to play itself. Sadly.",
	},
	"complete": {
		"Finish it and earn the smug satisfaction.",
		"The credits screen is closer than you think.",
		"One ending is worth ten beginnings.",
	},
	"amnesty": {
		"Letting go is also progress.",
		"No guilt. Some games just aren't for you.",
		"Amnesty granted is shelf space earned.",
	},
	"buy": {
		"You know you don't need another game, right?",
		"The pile is watching. The pile remembers.",
		"A sale is not a coupon for your free time.",
	},
}

// Motivational returns a random phrase for an action, one of
// play, complete, amnesty or buy
func (e *Engine) Motivational(action string) string {
	pool, ok := motivationPools[action]
	if !ok {
		return "You've got this."
	}
	return pool[e.rand(len(pool))]
}
