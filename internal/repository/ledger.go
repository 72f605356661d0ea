package repository

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Ledger defines the persistence surface of the ledger store: canonical
// balances and inventory counts.
type Ledger interface {
	GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetInventory(ctx context.Context, accountID string) ([]domain.InventoryEntry, error)
	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is the transactional scope for balance and inventory mutations.
type LedgerTx interface {
	Tx
	AccountOps
	InventoryOps
}
