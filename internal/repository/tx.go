package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Tx is the common contract of all transactional scopes. Every multi-entity
// mutation runs inside one Tx: all steps commit together or none do.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// AccountOps are the row-locked account mutations available inside a Tx.
type AccountOps interface {
	// GetAccountForUpdate loads the account row under an exclusive row lock,
	// creating it first if it does not exist.
	GetAccountForUpdate(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsForUpdate locks several account rows in ascending id order,
	// so two opposite-direction transfers cannot deadlock.
	GetAccountsForUpdate(ctx context.Context, accountIDs []string) (map[string]*domain.Account, error)

	// AdjustCurrency applies delta to the balance. Returns
	// domain.ErrInsufficientFunds when the result would be negative.
	AdjustCurrency(ctx context.Context, accountID string, currency domain.Currency, delta int64) error

	SetSkillLevels(ctx context.Context, accountID string, forgeLevel, enchantLevel int) error
	SetDailyGive(ctx context.Context, accountID string, amount int64, day time.Time) error
	SetLastTextReward(ctx context.Context, accountID string, t time.Time) error
	SetLastVoiceReward(ctx context.Context, accountID string, t time.Time) error
}

// InventoryOps are the only operations that may touch inventory rows; they
// preserve the invariant that no row with quantity <= 0 exists.
type InventoryOps interface {
	// GetInventoryQuantity returns the locked quantity of an item, 0 if the
	// account holds none.
	GetInventoryQuantity(ctx context.Context, accountID string, itemID int) (int, error)

	// AddInventory increments an existing row or creates one.
	AddInventory(ctx context.Context, accountID string, itemID, qty int) error

	// RemoveInventory decrements a row, deleting it at zero. Returns
	// domain.ErrItemNotOwned when the account holds fewer than qty.
	RemoveInventory(ctx context.Context, accountID string, itemID, qty int) error
}

// PetOps are the pet mutations available inside a Tx.
type PetOps interface {
	CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	GetActivePetForUpdate(ctx context.Context, ownerID string) (*domain.Pet, error)

	// AdjustPetLevel adds delta to the pet level and returns the new level.
	AdjustPetLevel(ctx context.Context, petID int, delta float64) (float64, error)

	RenamePet(ctx context.Context, petID int, name string) error
}

// CraftOps are the craft-job mutations available inside a Tx.
type CraftOps interface {
	GetIncompleteJobForUpdate(ctx context.Context, ownerID string) (*domain.CraftJob, error)
	CreateCraftJob(ctx context.Context, job *domain.CraftJob) error
	CompleteCraftJob(ctx context.Context, jobID uuid.UUID) error
}

// CatalogOps are the item-definition reads/writes available inside a Tx.
type CatalogOps interface {
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)

	// FindOrCreateItem returns the existing definition with the same name or
	// inserts the given one. Forge/enchant outputs are materialized this way.
	FindOrCreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
}
