package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/pileup/pileup/pkg/domain"
)

// EntryRepository handles pile entries
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates an entry repository
func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// entrySQL represents an entry row joined with its game for SQL operations
type entrySQL struct {
	ID              int64      `db:"id"`
	GameID          int64      `db:"game_id"`
	Status          string     `db:"status"`
	PlaytimeMinutes int        `db:"playtime_minutes"`
	PurchaseDate    *time.Time `db:"purchase_date"`
	PurchasePrice   float64    `db:"purchase_price"`
	CompletionDate  *time.Time `db:"completion_date"`
	AbandonDate     *time.Time `db:"abandon_date"`
	AbandonReason   string     `db:"abandon_reason"`
	AmnestyDate     *time.Time `db:"amnesty_date"`
	AmnestyReason   string     `db:"amnesty_reason"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`

	Game gameSQL `db:"game"`
}

const entrySelect = `
	SELECT e.id, e.game_id, e.status, e.playtime_minutes, e.purchase_date, e.purchase_price,
	       e.completion_date, e.abandon_date, e.abandon_reason, e.amnesty_date, e.amnesty_reason,
	       e.created_at, e.updated_at,
	       g.id "game.id", g.steam_app_id "game.steam_app_id", g.name "game.name",
	       g.description "game.description", g.image_url "game.image_url", g.price "game.price",
	       g.is_free "game.is_free", g.genres "game.genres", g.categories "game.categories",
	       g.release_date "game.release_date", g.developer "game.developer", g.publisher "game.publisher",
	       g.rating_percent "game.rating_percent", g.review_summary "game.review_summary",
	       g.review_count "game.review_count", g.last_played "game.last_played",
	       g.created_at "game.created_at", g.updated_at "game.updated_at"
	FROM entries e JOIN games g ON g.id = e.game_id
`

// Upsert creates an entry for a game or refreshes its playtime. The status of
// an existing entry is left alone so user decisions survive re-imports; a new
// entry starts as unplayed or playing depending on playtime.
func (r *EntryRepository) Upsert(ctx context.Context, gameID int64, playtimeMinutes int, purchaseDate time.Time, purchasePrice float64) error {
	status := domain.StatusUnplayed
	if playtimeMinutes > 0 {
		status = domain.StatusPlaying
	}

	var pd *time.Time
	if !purchaseDate.IsZero() {
		pd = &purchaseDate
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO entries (game_id, status, playtime_minutes, purchase_date, purchase_price)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(game_id) DO UPDATE SET
				playtime_minutes = excluded.playtime_minutes,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, gameID, status, playtimeMinutes, pd, purchasePrice)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert entry for game %d: %w", gameID, err)}
		}
		return nil
	})
}

// Get returns an entry with its game by entry id, nil when not found
func (r *EntryRepository) Get(ctx context.Context, id int64) (*domain.BacklogEntry, error) {
	var row entrySQL
	err := r.db.GetContext(ctx, &row, entrySelect+" WHERE e.id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	entry := row.toDomain()
	return &entry, nil
}

// Backlog returns entries matching the filter, newest purchases first unless
// the filter says otherwise
func (r *EntryRepository) Backlog(ctx context.Context, filter domain.EntryFilter) ([]domain.BacklogEntry, error) {
	query := entrySelect
	var conds []string
	var args []interface{}

	if filter.Status != "" {
		conds = append(conds, "e.status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.Genre != "" {
		// genres are stored as a JSON array of strings
		conds = append(conds, "EXISTS (SELECT 1 FROM json_each(g.genres) WHERE json_each.value = ?)")
		args = append(args, filter.Genre)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	sortCol := "e.id"
	switch filter.SortBy {
	case "playtime":
		sortCol = "e.playtime_minutes"
	case "rating":
		sortCol = "g.rating_percent"
	case "purchase_date":
		sortCol = "e.purchase_date"
	}
	dir := "DESC"
	if strings.EqualFold(filter.SortDirection, "asc") {
		dir = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, e.id ASC", sortCol, dir)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	var rows []entrySQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query backlog: %w", err)
	}

	entries := make([]domain.BacklogEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].toDomain()
	}
	return entries, nil
}

// UpdateStatus transitions an entry and stamps the matching lifecycle date.
// The reason applies to abandon and amnesty transitions, empty otherwise.
// Returns false when the entry does not exist.
func (r *EntryRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status, reason string) (bool, error) {
	if !status.Valid() {
		return false, fmt.Errorf("invalid status %q", status)
	}

	set := []string{"status = ?", "updated_at = datetime('now')"}
	args := []interface{}{string(status)}

	switch status {
	case domain.StatusCompleted:
		set = append(set, "completion_date = datetime('now')")
	case domain.StatusAbandoned:
		set = append(set, "abandon_date = datetime('now')", "abandon_reason = ?")
		args = append(args, reason)
	case domain.StatusAmnestyGranted:
		set = append(set, "amnesty_date = datetime('now')", "amnesty_reason = ?")
		args = append(args, reason)
	}
	args = append(args, id)

	var updated bool
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE entries SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update status for entry %d: %w", id, err)}
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("rows affected: %w", err)}
		}
		updated = n > 0
		return nil
	})
	return updated, err
}

// UpdatePlaytime stores fresh playtime for the entry of a game
func (r *EntryRepository) UpdatePlaytime(ctx context.Context, gameID int64, minutes int) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"UPDATE entries SET playtime_minutes = ?, updated_at = datetime('now') WHERE game_id = ?",
			minutes, gameID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update playtime for game %d: %w", gameID, err)}
		}
		return nil
	})
}

// CountByStatus returns the number of entries in the given status
func (r *EntryRepository) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM entries WHERE status = ?", string(status)); err != nil {
		return 0, fmt.Errorf("count entries by status: %w", err)
	}
	return count, nil
}

// Clear removes all entries, the destructive reset before a full re-import
func (r *EntryRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (e *entrySQL) toDomain() domain.BacklogEntry {
	entry := domain.BacklogEntry{
		ID:              e.ID,
		Status:          domain.Status(e.Status),
		PlaytimeMinutes: e.PlaytimeMinutes,
		PurchasePrice:   e.PurchasePrice,
		CompletionDate:  e.CompletionDate,
		AbandonDate:     e.AbandonDate,
		AbandonReason:   e.AbandonReason,
		AmnestyDate:     e.AmnestyDate,
		AmnestyReason:   e.AmnestyReason,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Game:            e.Game.toDomain(),
	}
	if e.PurchaseDate != nil {
		entry.PurchaseDate = *e.PurchaseDate
	}
	return entry
}
