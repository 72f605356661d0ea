package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// CraftRepository implements the craft repository for PostgreSQL
type CraftRepository struct {
	db *pgxpool.Pool
}

// NewCraftRepository creates a new CraftRepository
func NewCraftRepository(db *pgxpool.Pool) *CraftRepository {
	return &CraftRepository{db: db}
}

// BeginTx starts a new transaction
func (r *CraftRepository) BeginTx(ctx context.Context) (repository.CraftTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

// GetOrCreateAccount returns the account row, inserting it on first sight.
func (r *CraftRepository) GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return getOrCreateAccount(ctx, r.db, accountID)
}

// GetIncompleteJob returns the owner's pending craft job without locking it,
// or domain.ErrNoActiveJob.
func (r *CraftRepository) GetIncompleteJob(ctx context.Context, ownerID string) (*domain.CraftJob, error) {
	var job domain.CraftJob
	err := r.db.QueryRow(ctx,
		`SELECT job_id, owner_id, item_kind, started_at, committed_duration_minutes, is_complete
		 FROM craft_jobs
		 WHERE owner_id = $1 AND NOT is_complete`,
		ownerID).Scan(&job.ID, &job.OwnerID, &job.ItemKind, &job.StartedAt,
		&job.CommittedDuration, &job.IsComplete)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoActiveJob
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get craft job: %w", err)
	}
	return &job, nil
}

// GetItemByName retrieves an item definition by name.
func (r *CraftRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return getItemByName(ctx, r.db, name)
}
