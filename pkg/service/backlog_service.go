package service

import (
	"context"
	"time"

	"github.com/pileup/pileup/pkg/domain"
	"github.com/pileup/pileup/pkg/repository"
	"github.com/pileup/pileup/pkg/stats"
)

// BacklogService provides unified access to repositories for the scheduler
// and the HTTP server
type BacklogService struct {
	gameRepo  *repository.GameRepository
	entryRepo *repository.EntryRepository
	shareRepo *repository.ShareRepository
}

// NewBacklogService creates a new backlog service
func NewBacklogService(gameRepo *repository.GameRepository, entryRepo *repository.EntryRepository, shareRepo *repository.ShareRepository) *BacklogService {
	return &BacklogService{
		gameRepo:  gameRepo,
		entryRepo: entryRepo,
		shareRepo: shareRepo,
	}
}

// Game catalog methods

func (s *BacklogService) GameByAppID(ctx context.Context, appID int64) (*domain.Game, error) {
	return s.gameRepo.GetByAppID(ctx, appID)
}

func (s *BacklogService) UpsertGame(ctx context.Context, game *domain.Game) (int64, error) {
	return s.gameRepo.Upsert(ctx, game)
}

// Backlog entry methods

func (s *BacklogService) Entry(ctx context.Context, id int64) (*domain.BacklogEntry, error) {
	return s.entryRepo.Get(ctx, id)
}

func (s *BacklogService) UpsertEntry(ctx context.Context, gameID int64, playtimeMinutes int, purchaseDate time.Time, purchasePrice float64) error {
	return s.entryRepo.Upsert(ctx, gameID, playtimeMinutes, purchaseDate, purchasePrice)
}

func (s *BacklogService) Backlog(ctx context.Context, filter domain.EntryFilter) ([]domain.BacklogEntry, error) {
	return s.entryRepo.Backlog(ctx, filter)
}

func (s *BacklogService) UpdateStatus(ctx context.Context, id int64, status domain.Status, reason string) (bool, error) {
	return s.entryRepo.UpdateStatus(ctx, id, status, reason)
}

func (s *BacklogService) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	return s.entryRepo.CountByStatus(ctx, status)
}

func (s *BacklogService) ClearBacklog(ctx context.Context) (int64, error) {
	return s.entryRepo.Clear(ctx)
}

// Share card methods

func (s *BacklogService) CreateShare(ctx context.Context, payload stats.Shareable) (string, error) {
	return s.shareRepo.Create(ctx, payload)
}

func (s *BacklogService) GetShare(ctx context.Context, id string) (*stats.Shareable, error) {
	return s.shareRepo.Get(ctx, id)
}
