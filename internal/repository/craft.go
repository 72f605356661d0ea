package repository

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Craft defines the persistence surface for forge jobs and enchanting.
type Craft interface {
	GetOrCreateAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetIncompleteJob(ctx context.Context, ownerID string) (*domain.CraftJob, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	BeginTx(ctx context.Context) (CraftTx, error)
}

// CraftTx is the transactional scope for start/collect/enchant units.
type CraftTx interface {
	Tx
	AccountOps
	InventoryOps
	CraftOps
	CatalogOps
}
