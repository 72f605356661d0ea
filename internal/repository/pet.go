package repository

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Pet defines the persistence surface of the pet registry.
type Pet interface {
	ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error)
	GetPet(ctx context.Context, petID int) (*domain.Pet, error)
	GetActivePet(ctx context.Context, ownerID string) (*domain.Pet, error)

	// SetActivePet deactivates every other pet of the owner and activates the
	// target as one invariant-preserving operation.
	SetActivePet(ctx context.Context, ownerID string, petID int) (*domain.Pet, error)

	// IncrementActivePetLevels adds delta to every active pet's level and
	// returns the number of pets grown.
	IncrementActivePetLevels(ctx context.Context, delta float64) (int, error)

	CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	DeletePet(ctx context.Context, petID int) error
	RenamePet(ctx context.Context, petID int, name string) error

	BeginTx(ctx context.Context) (PetTx, error)
}

// PetTx is the transactional scope for feeding units.
type PetTx interface {
	Tx
	AccountOps
	InventoryOps
	PetOps
	CatalogOps
}
