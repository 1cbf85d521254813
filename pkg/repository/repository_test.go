package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/stats"
)

func setupTestDB(t *testing.T) *Repositories {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")
	repos, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	return repos
}

func createTestGame(t *testing.T, repos *Repositories, appID int64, name string) int64 {
	t.Helper()

	id, err := repos.Game.Upsert(context.Background(), &domain.Game{
		SteamAppID: appID,
		Name:       name,
		Genres:     []string{"Indie", "Puzzle"},
		Price:      19.99,
	})
	require.NoError(t, err)
	return id
}

func TestNewRepositories(t *testing.T) {
	repos := setupTestDB(t)
	require.NoError(t, repos.Ping(context.Background()))

	// schema and migrations are idempotent: reopening the same file works
	dsn := "file:" + filepath.Join(t.TempDir(), "reopen.db")
	first, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestGameRepository_Upsert(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	id := createTestGame(t, repos, 620, "Portal 2")
	require.NotZero(t, id)

	game, err := repos.Game.GetByAppID(ctx, 620)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Portal 2", game.Name)
	assert.Equal(t, []string{"Indie", "Puzzle"}, game.Genres)

	// refresh with new data keeps the same row
	id2, err := repos.Game.Upsert(ctx, &domain.Game{
		SteamAppID:    620,
		Name:          "Portal 2",
		RatingPercent: 98,
		Price:         4.99,
	})
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	game, err = repos.Game.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, 98, game.RatingPercent)
	assert.InDelta(t, 4.99, game.Price, 0.001)
	// empty refresh values don't clobber stored data
	assert.Equal(t, []string{"Indie", "Puzzle"}, game.Genres)
}

func TestGameRepository_GetMissing(t *testing.T) {
	repos := setupTestDB(t)

	game, err := repos.Game.Get(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, game)

	game, err = repos.Game.GetByAppID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestEntryRepository_UpsertAndGet(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	gameID := createTestGame(t, repos, 620, "Portal 2")
	purchased := time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Entry.Upsert(ctx, gameID, 0, purchased, 9.99))

	entries, err := repos.Entry.Backlog(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	en := entries[0]
	assert.Equal(t, domain.StatusUnplayed, en.Status)
	assert.Zero(t, en.PlaytimeMinutes)
	assert.InDelta(t, 9.99, en.PurchasePrice, 0.001)
	assert.True(t, en.PurchaseDate.Equal(purchased))
	assert.Equal(t, "Portal 2", en.Game.Name)

	// re-import refreshes playtime but leaves status decisions alone
	ok, err := repos.Entry.UpdateStatus(ctx, en.ID, domain.StatusAmnestyGranted, "not my thing")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repos.Entry.Upsert(ctx, gameID, 45, purchased, 9.99))

	got, err := repos.Entry.Get(ctx, en.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusAmnestyGranted, got.Status)
	assert.Equal(t, 45, got.PlaytimeMinutes)
	assert.Equal(t, "not my thing", got.AmnestyReason)
	assert.NotNil(t, got.AmnestyDate)
}

func TestEntryRepository_UpsertStartsPlaying(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	gameID := createTestGame(t, repos, 440, "Team Fortress 2")
	require.NoError(t, repos.Entry.Upsert(ctx, gameID, 300, time.Time{}, 0))

	entries, err := repos.Entry.Backlog(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.StatusPlaying, entries[0].Status)
	assert.True(t, entries[0].PurchaseDate.IsZero(), "unknown purchase date round-trips as zero")
}

func TestEntryRepository_BacklogFilters(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	games := []struct {
		appID  int64
		name   string
		genres []string
		rating int
	}{
		{1, "Puzzler", []string{"Puzzle"}, 95},
		{2, "Shooter", []string{"Action"}, 80},
		{3, "Mixed", []string{"Action", "Puzzle"}, 70},
	}
	for _, g := range games {
		id, err := repos.Game.Upsert(ctx, &domain.Game{
			SteamAppID: g.appID, Name: g.name, Genres: g.genres, RatingPercent: g.rating,
		})
		require.NoError(t, err)
		require.NoError(t, repos.Entry.Upsert(ctx, id, 0, time.Time{}, 0))
	}

	// mark one entry completed
	entries, err := repos.Entry.Backlog(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	ok, err := repos.Entry.UpdateStatus(ctx, entries[0].ID, domain.StatusCompleted, "")
	require.NoError(t, err)
	require.True(t, ok)

	unplayed, err := repos.Entry.Backlog(ctx, domain.EntryFilter{Status: domain.StatusUnplayed})
	require.NoError(t, err)
	assert.Len(t, unplayed, 2)

	puzzles, err := repos.Entry.Backlog(ctx, domain.EntryFilter{Genre: "Puzzle"})
	require.NoError(t, err)
	assert.Len(t, puzzles, 2)

	byRating, err := repos.Entry.Backlog(ctx, domain.EntryFilter{SortBy: "rating"})
	require.NoError(t, err)
	require.Len(t, byRating, 3)
	assert.Equal(t, "Puzzler", byRating[0].Game.Name)
	assert.Equal(t, "Mixed", byRating[2].Game.Name)

	limited, err := repos.Entry.Backlog(ctx, domain.EntryFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestEntryRepository_UpdateStatus(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	gameID := createTestGame(t, repos, 620, "Portal 2")
	require.NoError(t, repos.Entry.Upsert(ctx, gameID, 0, time.Time{}, 0))

	entries, err := repos.Entry.Backlog(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	id := entries[0].ID

	tests := []struct {
		status domain.Status
		reason string
		check  func(t *testing.T, en *domain.BacklogEntry)
	}{
		{domain.StatusPlaying, "", func(t *testing.T, en *domain.BacklogEntry) {
			assert.Nil(t, en.CompletionDate)
		}},
		{domain.StatusCompleted, "", func(t *testing.T, en *domain.BacklogEntry) {
			assert.NotNil(t, en.CompletionDate)
		}},
		{domain.StatusAbandoned, "got bored", func(t *testing.T, en *domain.BacklogEntry) {
			assert.NotNil(t, en.AbandonDate)
			assert.Equal(t, "got bored", en.AbandonReason)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ok, err := repos.Entry.UpdateStatus(ctx, id, tt.status, tt.reason)
			require.NoError(t, err)
			require.True(t, ok)

			en, err := repos.Entry.Get(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, en)
			assert.Equal(t, tt.status, en.Status)
			tt.check(t, en)
		})
	}

	t.Run("missing entry", func(t *testing.T) {
		ok, err := repos.Entry.UpdateStatus(ctx, 9999, domain.StatusPlaying, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := repos.Entry.UpdateStatus(ctx, id, "broken", "")
		assert.Error(t, err)
	})
}

func TestEntryRepository_CountAndClear(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		id := createTestGame(t, repos, i, "game")
		require.NoError(t, repos.Entry.Upsert(ctx, id, 0, time.Time{}, 0))
	}

	count, err := repos.Entry.CountByStatus(ctx, domain.StatusUnplayed)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	deleted, err := repos.Entry.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	count, err = repos.Entry.CountByStatus(ctx, domain.StatusUnplayed)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestEntryRepository_UpdatePlaytime(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	gameID := createTestGame(t, repos, 620, "Portal 2")
	require.NoError(t, repos.Entry.Upsert(ctx, gameID, 0, time.Time{}, 0))

	require.NoError(t, repos.Entry.UpdatePlaytime(ctx, gameID, 125))

	entries, err := repos.Entry.Backlog(ctx, domain.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 125, entries[0].PlaytimeMinutes)
	assert.Equal(t, domain.StatusUnplayed, entries[0].Status, "playtime refresh alone does not change status")
}

func TestShareRepository_RoundTrip(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	payload := stats.Shareable{
		UserName:      "alex",
		ShameScore:    123.5,
		Rank:          "Serial Buyer",
		TotalGames:    50,
		UnplayedGames: 30,
		FunFact:       "Professional game collector, amateur game player",
	}

	id, err := repos.Share.Create(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repos.Share.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, payload, *got)

	missing, err := repos.Share.Get(ctx, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
