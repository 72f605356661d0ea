package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

// GetOrCreateAccount returns the account row, inserting it on first sight.
func (r *LedgerRepository) GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return getOrCreateAccount(ctx, r.db, accountID)
}

// GetAccount returns the account row or domain.ErrAccountNotFound.
func (r *LedgerRepository) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return getAccount(ctx, r.db, accountID)
}

// GetInventory returns every stack the account holds.
func (r *LedgerRepository) GetInventory(ctx context.Context, accountID string) ([]domain.InventoryEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT account_id, item_id, quantity FROM inventory
		 WHERE account_id = $1 ORDER BY item_id`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryEntry
	for rows.Next() {
		var e domain.InventoryEntry
		if err := rows.Scan(&e.AccountID, &e.ItemID, &e.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	return entries, nil
}
