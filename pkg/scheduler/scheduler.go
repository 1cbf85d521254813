package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/steam"
)

//go:generate moq -out mocks/steam_client.go -pkg mocks -skip-ensure -fmt goimports . SteamClient
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Scheduler manages periodic Steam library syncs and stale entry detection
type Scheduler struct {
	steam          SteamClient
	store          Store
	steamID        string
	syncInterval   time.Duration
	detectInterval time.Duration
	abandonAfter   time.Duration
	now            func() time.Time
	wg             sync.WaitGroup
	cancel         context.CancelFunc
	syncMutex      sync.Mutex // serialize sync runs, scheduled and manual
}

// SteamClient interface for the Steam Web API
type SteamClient interface {
	OwnedGames(ctx context.Context, steamID string) ([]steam.OwnedGame, error)
	DetailsBatch(ctx context.Context, appIDs []int64) (map[int64]steam.Details, error)
}

// Store interface for scheduler persistence operations
type Store interface {
	GameByAppID(ctx context.Context, appID int64) (*domain.Game, error)
	UpsertGame(ctx context.Context, game *domain.Game) (int64, error)
	UpsertEntry(ctx context.Context, gameID int64, playtimeMinutes int, purchaseDate time.Time, purchasePrice float64) error
	Backlog(ctx context.Context, filter domain.EntryFilter) ([]domain.BacklogEntry, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, reason string) (bool, error)
}

// SyncResult summarizes a completed library sync
type SyncResult struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
}

// Config holds scheduler configuration
type Config struct {
	SteamID        string
	SyncInterval   time.Duration
	DetectInterval time.Duration
	AbandonAfter   time.Duration
}

// NewScheduler creates a new scheduler instance
func NewScheduler(steamClient SteamClient, store Store, cfg Config) *Scheduler {
	if cfg.SyncInterval == 0 {
		cfg.SyncInterval = 6 * time.Hour
	}
	if cfg.DetectInterval == 0 {
		cfg.DetectInterval = 24 * time.Hour
	}
	if cfg.AbandonAfter == 0 {
		cfg.AbandonAfter = 90 * 24 * time.Hour
	}

	return &Scheduler{
		steam:          steamClient,
		store:          store,
		steamID:        cfg.SteamID,
		syncInterval:   cfg.SyncInterval,
		detectInterval: cfg.DetectInterval,
		abandonAfter:   cfg.AbandonAfter,
		now:            time.Now,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	s.wg.Add(1)
	go s.detectWorker(ctx)

	lgr.Printf("[INFO] scheduler started with sync interval %v, detect interval %v", s.syncInterval, s.detectInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// syncWorker periodically syncs the Steam library
func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.syncInterval)
	defer ticker.Stop()

	// run immediately on start
	if _, err := s.SyncNow(ctx); err != nil {
		lgr.Printf("[ERROR] initial sync failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SyncNow(ctx); err != nil {
				lgr.Printf("[ERROR] scheduled sync failed: %v", err)
			}
		}
	}
}

// detectWorker periodically marks stale entries as abandoned
func (s *Scheduler) detectWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.detectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.DetectNow(ctx); err != nil {
				lgr.Printf("[ERROR] abandoned detection failed: %v", err)
			}
		}
	}
}

// SyncNow fetches the Steam library and upserts every owned game. New apps get
// full store details, known apps only refresh playtime and last played.
func (s *Scheduler) SyncNow(ctx context.Context) (SyncResult, error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	owned, err := s.steam.OwnedGames(ctx, s.steamID)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch owned games: %w", err)
	}

	lgr.Printf("[INFO] syncing %d owned games", len(owned))

	var missing []int64
	for _, og := range owned {
		game, err := s.store.GameByAppID(ctx, og.AppID)
		if err != nil {
			return SyncResult{}, fmt.Errorf("lookup app %d: %w", og.AppID, err)
		}
		if game == nil {
			missing = append(missing, og.AppID)
		}
	}

	details := map[int64]steam.Details{}
	if len(missing) > 0 {
		details, err = s.steam.DetailsBatch(ctx, missing)
		if err != nil {
			return SyncResult{}, fmt.Errorf("fetch details: %w", err)
		}
	}

	missingSet := make(map[int64]bool, len(missing))
	for _, id := range missing {
		missingSet[id] = true
	}

	res := SyncResult{Total: len(owned)}
	for _, og := range owned {
		game := gameFromOwned(og, details[og.AppID])

		gameID, err := s.store.UpsertGame(ctx, game)
		if err != nil {
			lgr.Printf("[ERROR] failed to upsert game %q: %v", og.Name, err)
			continue
		}

		var price float64
		if d := details[og.AppID]; d.App != nil && !d.App.IsFree {
			price = d.App.Price
		}
		if err := s.store.UpsertEntry(ctx, gameID, og.PlaytimeForever, time.Time{}, price); err != nil {
			lgr.Printf("[ERROR] failed to upsert entry for %q: %v", og.Name, err)
			continue
		}

		if missingSet[og.AppID] {
			res.Imported++
		} else {
			res.Updated++
		}
	}

	lgr.Printf("[INFO] sync completed: %d imported, %d updated", res.Imported, res.Updated)
	return res, nil
}

// gameFromOwned builds a game record from the owned-games entry plus optional
// store details. Details may be absent for delisted apps.
func gameFromOwned(og steam.OwnedGame, d steam.Details) *domain.Game {
	game := &domain.Game{
		SteamAppID: og.AppID,
		Name:       og.Name,
	}
	game.LastPlayed = og.RTimeLastPlayed

	if d.App != nil {
		if d.App.Name != "" {
			game.Name = d.App.Name
		}
		game.Description = d.App.Description
		game.Price = d.App.Price
		game.IsFree = d.App.IsFree
		game.Genres = d.App.Genres
		game.Categories = d.App.Categories
		game.ReleaseDate = d.App.ReleaseDate
		game.Developer = d.App.Developer
		game.Publisher = d.App.Publisher
	}
	if d.Reviews != nil {
		game.RatingPercent = d.Reviews.RatingPercent
		game.ReviewSummary = d.Reviews.Summary
		game.ReviewCount = d.Reviews.TotalReviews
	}
	return game
}

// DetectNow marks entries with no recent activity as abandoned, returning
// the number of entries changed. Only playing entries and unplayed entries
// with some recorded playtime are candidates; a never-launched game stays
// in the pile until the user deals with it
func (s *Scheduler) DetectNow(ctx context.Context) (int, error) {
	playing, err := s.store.Backlog(ctx, domain.EntryFilter{Status: domain.StatusPlaying})
	if err != nil {
		return 0, fmt.Errorf("list playing entries: %w", err)
	}
	unplayed, err := s.store.Backlog(ctx, domain.EntryFilter{Status: domain.StatusUnplayed})
	if err != nil {
		return 0, fmt.Errorf("list unplayed entries: %w", err)
	}
	candidates := playing
	for _, en := range unplayed {
		if en.PlaytimeMinutes > 0 {
			candidates = append(candidates, en)
		}
	}

	stale := staleEntries(candidates, s.now(), s.abandonAfter)
	if len(stale) == 0 {
		return 0, nil
	}

	months := int(s.abandonAfter.Hours() / (30 * 24))
	reason := fmt.Sprintf("no activity for %d months", months)

	changed := 0
	for _, en := range stale {
		ok, err := s.store.UpdateStatus(ctx, en.ID, domain.StatusAbandoned, reason)
		if err != nil {
			lgr.Printf("[ERROR] failed to abandon entry %d: %v", en.ID, err)
			continue
		}
		if ok {
			changed++
			lgr.Printf("[INFO] marked %q abandoned, last activity %v", en.Game.Name, lastActivity(en))
		}
	}
	return changed, nil
}

// staleEntries filters entries whose last activity is older than the cutoff.
// Last played from Steam wins over our own update timestamp when present.
func staleEntries(entries []domain.BacklogEntry, now time.Time, abandonAfter time.Duration) []domain.BacklogEntry {
	cutoff := now.Add(-abandonAfter)

	var stale []domain.BacklogEntry
	for _, en := range entries {
		last := lastActivity(en)
		if last.IsZero() {
			continue
		}
		if last.Before(cutoff) {
			stale = append(stale, en)
		}
	}
	return stale
}

func lastActivity(en domain.BacklogEntry) time.Time {
	if en.Game.LastPlayed > 0 {
		return time.Unix(en.Game.LastPlayed, 0).UTC()
	}
	return en.UpdatedAt
}
