package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pileup/pileup/pkg/stats"
)

// ShareRepository persists share-card snapshots so generated links keep
// working after the pile changes
type ShareRepository struct {
	db *sqlx.DB
}

// NewShareRepository creates a share repository
func NewShareRepository(db *sqlx.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Create stores a share snapshot and returns its generated id
func (r *ShareRepository) Create(ctx context.Context, payload stats.Shareable) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, "INSERT INTO shares (id, payload) VALUES (?, ?)", id, string(data)); err != nil {
		return "", fmt.Errorf("insert share: %w", err)
	}
	return id, nil
}

// Get returns a stored share snapshot, nil when the id is unknown
func (r *ShareRepository) Get(ctx context.Context, id string) (*stats.Shareable, error) {
	var data string
	err := r.db.GetContext(ctx, &data, "SELECT payload FROM shares WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get share %s: %w", id, err)
	}

	var payload stats.Shareable
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal share payload: %w", err)
	}
	return &payload, nil
}
