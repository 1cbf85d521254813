package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pileup/pileup/pkg/domain"
)

// GameRepository handles catalog records
type GameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a game repository
func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// gameSQL represents a game row for SQL operations
type gameSQL struct {
	ID            int64      `db:"id"`
	SteamAppID    int64      `db:"steam_app_id"`
	Name          string     `db:"name"`
	Description   string     `db:"description"`
	ImageURL      string     `db:"image_url"`
	Price         float64    `db:"price"`
	IsFree        bool       `db:"is_free"`
	Genres        stringsSQL `db:"genres"`
	Categories    stringsSQL `db:"categories"`
	ReleaseDate   string     `db:"release_date"`
	Developer     string     `db:"developer"`
	Publisher     string     `db:"publisher"`
	RatingPercent int        `db:"rating_percent"`
	ReviewSummary string     `db:"review_summary"`
	ReviewCount   int        `db:"review_count"`
	LastPlayed    int64      `db:"last_played"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = stringsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for strings: %T", value)
	}
	return json.Unmarshal(data, s)
}

// Upsert inserts or refreshes a catalog record keyed by steam app id and
// returns the stored row id
func (r *GameRepository) Upsert(ctx context.Context, game *domain.Game) (int64, error) {
	query := `
		INSERT INTO games (steam_app_id, name, description, image_url, price, is_free,
		                   genres, categories, release_date, developer, publisher,
		                   rating_percent, review_summary, review_count, last_played, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(steam_app_id) DO UPDATE SET
			name = excluded.name,
			description = CASE WHEN excluded.description != '' THEN excluded.description ELSE games.description END,
			image_url = CASE WHEN excluded.image_url != '' THEN excluded.image_url ELSE games.image_url END,
			price = CASE WHEN excluded.price > 0 THEN excluded.price ELSE games.price END,
			is_free = CASE WHEN excluded.is_free THEN excluded.is_free ELSE games.is_free END,
			genres = CASE WHEN excluded.genres != '[]' THEN excluded.genres ELSE games.genres END,
			categories = CASE WHEN excluded.categories != '[]' THEN excluded.categories ELSE games.categories END,
			release_date = CASE WHEN excluded.release_date != '' THEN excluded.release_date ELSE games.release_date END,
			developer = CASE WHEN excluded.developer != '' THEN excluded.developer ELSE games.developer END,
			publisher = CASE WHEN excluded.publisher != '' THEN excluded.publisher ELSE games.publisher END,
			rating_percent = CASE WHEN excluded.rating_percent > 0 THEN excluded.rating_percent ELSE games.rating_percent END,
			review_summary = CASE WHEN excluded.review_summary != '' THEN excluded.review_summary ELSE games.review_summary END,
			review_count = CASE WHEN excluded.review_count > 0 THEN excluded.review_count ELSE games.review_count END,
			last_played = CASE WHEN excluded.last_played > 0 THEN excluded.last_played ELSE games.last_played END,
			updated_at = datetime('now')
	`
	_, err := r.db.ExecContext(ctx, query,
		game.SteamAppID, game.Name, game.Description, game.ImageURL, game.Price, game.IsFree,
		stringsSQL(game.Genres), stringsSQL(game.Categories), game.ReleaseDate,
		game.Developer, game.Publisher, game.RatingPercent, game.ReviewSummary,
		game.ReviewCount, game.LastPlayed)
	if err != nil {
		return 0, fmt.Errorf("upsert game %d: %w", game.SteamAppID, err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, "SELECT id FROM games WHERE steam_app_id = ?", game.SteamAppID); err != nil {
		return 0, fmt.Errorf("get game id for %d: %w", game.SteamAppID, err)
	}
	game.ID = id
	return id, nil
}

// Get returns a game by row id, nil when not found
func (r *GameRepository) Get(ctx context.Context, id int64) (*domain.Game, error) {
	var row gameSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM games WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game %d: %w", id, err)
	}
	game := row.toDomain()
	return &game, nil
}

// GetByAppID returns a game by steam app id, nil when not found
func (r *GameRepository) GetByAppID(ctx context.Context, appID int64) (*domain.Game, error) {
	var row gameSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM games WHERE steam_app_id = ?", appID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game by app id %d: %w", appID, err)
	}
	game := row.toDomain()
	return &game, nil
}

func (g *gameSQL) toDomain() domain.Game {
	return domain.Game{
		ID:            g.ID,
		SteamAppID:    g.SteamAppID,
		Name:          g.Name,
		Description:   g.Description,
		ImageURL:      g.ImageURL,
		Price:         g.Price,
		IsFree:        g.IsFree,
		Genres:        g.Genres,
		Categories:    g.Categories,
		ReleaseDate:   g.ReleaseDate,
		Developer:     g.Developer,
		Publisher:     g.Publisher,
		RatingPercent: g.RatingPercent,
		ReviewSummary: g.ReviewSummary,
		ReviewCount:   g.ReviewCount,
		LastPlayed:    g.LastPlayed,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
