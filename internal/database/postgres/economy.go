package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

// GetOrCreateAccount returns the account row, inserting it on first sight.
func (r *EconomyRepository) GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return getOrCreateAccount(ctx, r.db, accountID)
}

// GetItemByName retrieves an item definition by name.
func (r *EconomyRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return getItemByName(ctx, r.db, name)
}

// GetItemByID retrieves an item definition by id.
func (r *EconomyRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return getItemByID(ctx, r.db, itemID)
}
