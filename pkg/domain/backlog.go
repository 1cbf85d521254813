package domain

import "time"

// Status represents the lifecycle state of a backlog entry
type Status string

// entry statuses, matching the Steam import semantics: an entry starts as
// unplayed, moves to playing once it has playtime, and ends as completed,
// abandoned or amnesty_granted
const (
	StatusUnplayed       Status = "unplayed"
	StatusPlaying        Status = "playing"
	StatusCompleted      Status = "completed"
	StatusAbandoned      Status = "abandoned"
	StatusAmnestyGranted Status = "amnesty_granted"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusUnplayed, StatusPlaying, StatusCompleted, StatusAbandoned, StatusAmnestyGranted:
		return true
	}
	return false
}

// Game represents a catalog record for a game, refreshed from the Steam store.
// RatingPercent is the positive review percentage (0-100), 0 means unknown.
type Game struct {
	ID            int64     `json:"id"`
	SteamAppID    int64     `json:"steam_app_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Price         float64   `json:"price"` // current catalog price, 0 for free or unknown
	IsFree        bool      `json:"is_free"`
	Genres        []string  `json:"genres"`
	Categories    []string  `json:"categories,omitempty"`
	ReleaseDate   string    `json:"release_date,omitempty"`
	Developer     string    `json:"developer,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	RatingPercent int       `json:"rating_percent"`
	ReviewSummary string    `json:"review_summary,omitempty"`
	ReviewCount   int       `json:"review_count"`
	LastPlayed    int64     `json:"last_played,omitempty"` // unix timestamp from Steam, 0 if never reported
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasGenre reports whether the game's genre set contains the given genre
func (g *Game) HasGenre(genre string) bool {
	for _, gg := range g.Genres {
		if gg == genre {
			return true
		}
	}
	return false
}

// BacklogEntry represents a single owned game in the user's pile.
// Status and PlaytimeMinutes are independent fields and may disagree
// (e.g. abandoned with nonzero minutes); the engine tolerates such data.
// PurchaseDate zero value means the acquisition time is unknown,
// PurchasePrice zero value means the paid amount is unknown.
type BacklogEntry struct {
	ID              int64      `json:"id"`
	Status          Status     `json:"status"`
	PlaytimeMinutes int        `json:"playtime_minutes"`
	PurchaseDate    time.Time  `json:"purchase_date,omitzero"`
	PurchasePrice   float64    `json:"purchase_price"`
	CompletionDate  *time.Time `json:"completion_date,omitempty"`
	AbandonDate     *time.Time `json:"abandon_date,omitempty"`
	AbandonReason   string     `json:"abandon_reason,omitempty"`
	AmnestyDate     *time.Time `json:"amnesty_date,omitempty"`
	AmnestyReason   string     `json:"amnesty_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Game Game `json:"game"`
}

// NeverTouched reports whether the game was never launched
func (e *BacklogEntry) NeverTouched() bool { return e.PlaytimeMinutes == 0 }

// AgeAt returns how long the entry has been owned at the given moment,
// zero if the purchase date is unknown
func (e *BacklogEntry) AgeAt(now time.Time) time.Duration {
	if e.PurchaseDate.IsZero() {
		return 0
	}
	return now.Sub(e.PurchaseDate)
}

// EntryFilter represents filtering and sorting criteria for backlog queries
type EntryFilter struct {
	Status        Status
	Genre         string
	SortBy        string // playtime, rating, purchase_date
	SortDirection string // asc or desc, desc by default
	Limit         int
	Offset        int
}
