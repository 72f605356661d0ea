package repository

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Economy defines the persistence surface for purchases, gifts, coin gives
// and loot-box opens.
type Economy interface {
	GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx is the transactional scope for multi-entity economy units.
// Loot-box opens may create pets, so pet ops are included.
type EconomyTx interface {
	Tx
	AccountOps
	InventoryOps
	PetOps
	CatalogOps
}
