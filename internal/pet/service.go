package pet

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// FeedResult reports one feeding.
type FeedResult struct {
	PetID    int     `json:"pet_id"`
	Species  string  `json:"species"`
	Gain     float64 `json:"gain"`
	NewLevel float64 `json:"new_level"`
}

// Service is the pet registry: ownership, the single-active invariant,
// feeding and the hourly growth pass.
type Service interface {
	ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error)
	GetActivePet(ctx context.Context, ownerID string) (*domain.Pet, error)

	// SetActivePet activates the target and deactivates every other pet of
	// the owner. Activating the already-active pet is a no-op.
	SetActivePet(ctx context.Context, ownerID string, petID int) (*domain.Pet, error)

	// FeedActivePet consumes one pet food and grows the active pet with
	// diminishing returns.
	FeedActivePet(ctx context.Context, ownerID string) (*FeedResult, error)

	// GrantPet rolls a species from the tier pool and persists the new pet.
	// The first pet an owner receives becomes active.
	GrantPet(ctx context.Context, ownerID string, tier domain.PetTier) (*domain.Pet, error)

	// OpenPetBox consumes one pet box and grants a pet of the box's tier.
	// Box consumption and the grant land in one transaction.
	OpenPetBox(ctx context.Context, ownerID, boxName string) (*domain.Pet, error)

	// RenamePet consumes one rename scroll and renames an owned pet.
	RenamePet(ctx context.Context, ownerID string, petID int, name string) error

	RemovePet(ctx context.Context, ownerID string, petID int) error

	// RunHourlyGrowth grows every active pet by the hourly increment and
	// returns the number of pets grown.
	RunHourlyGrowth(ctx context.Context) (int, error)
}

type service struct {
	repo repository.Pet
	rnd  func() float64
	now  func() time.Time
}

// NewService creates a new pet service
func NewService(repo repository.Pet) Service {
	return &service{repo: repo, rnd: rand.Float64, now: time.Now}
}

func (s *service) ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	return s.repo.ListPets(ctx, ownerID)
}

func (s *service) GetActivePet(ctx context.Context, ownerID string) (*domain.Pet, error) {
	return s.repo.GetActivePet(ctx, ownerID)
}

func (s *service) SetActivePet(ctx context.Context, ownerID string, petID int) (*domain.Pet, error) {
	current, err := s.repo.GetActivePet(ctx, ownerID)
	if err == nil && current.ID == petID {
		return current, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNoActivePet) {
		return nil, err
	}
	return s.repo.SetActivePet(ctx, ownerID, petID)
}

func (s *service) FeedActivePet(ctx context.Context, ownerID string) (*FeedResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, ownerID); err != nil {
		return nil, err
	}
	active, err := tx.GetActivePetForUpdate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	food, err := tx.GetItemByName(ctx, domain.ItemPetFood)
	if err != nil {
		return nil, err
	}
	if err := tx.RemoveInventory(ctx, ownerID, food.ID, 1); err != nil {
		if errors.Is(err, domain.ErrItemNotOwned) {
			return nil, fmt.Errorf("%w: buy some %s first", domain.ErrNoFoodOwned, domain.ItemPetFood)
		}
		return nil, err
	}

	gain := domain.FeedGain(active.Level)
	newLevel, err := tx.AdjustPetLevel(ctx, active.ID, gain)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Pet fed", "owner", ownerID, "pet", active.Species, "gain", gain, "level", newLevel)
	return &FeedResult{PetID: active.ID, Species: active.Species, Gain: gain, NewLevel: newLevel}, nil
}

func (s *service) GrantPet(ctx context.Context, ownerID string, tier domain.PetTier) (*domain.Pet, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown pet tier %q", domain.ErrInvalidInput, tier)
	}

	rolled := Roll(ownerID, tier, s.rnd, s.now())
	if _, err := s.repo.GetActivePet(ctx, ownerID); errors.Is(err, domain.ErrNoActivePet) {
		rolled.IsActive = true
	}

	created, err := s.repo.CreatePet(ctx, rolled)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Pet granted", "owner", ownerID, "species", created.Species, "tier", created.Tier)
	return created, nil
}

func (s *service) OpenPetBox(ctx context.Context, ownerID, boxName string) (*domain.Pet, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, ownerID); err != nil {
		return nil, err
	}
	box, err := tx.GetItemByName(ctx, boxName)
	if err != nil {
		return nil, err
	}
	tier := box.Kind.PetTier()
	if tier == "" {
		return nil, fmt.Errorf("%w: %s is not a pet box", domain.ErrInvalidInput, box.Name)
	}
	if err := tx.RemoveInventory(ctx, ownerID, box.ID, 1); err != nil {
		if errors.Is(err, domain.ErrItemNotOwned) {
			return nil, fmt.Errorf("%w: no %s to open", domain.ErrNoBoxOwned, box.Name)
		}
		return nil, err
	}

	rolled := Roll(ownerID, tier, s.rnd, s.now())
	if _, err := tx.GetActivePetForUpdate(ctx, ownerID); err != nil {
		if !errors.Is(err, domain.ErrNoActivePet) {
			return nil, err
		}
		rolled.IsActive = true
	}
	created, err := tx.CreatePet(ctx, rolled)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Pet box opened",
		"owner", ownerID, "box", box.Name, "species", created.Species, "tier", created.Tier)
	return created, nil
}

func (s *service) RenamePet(ctx context.Context, ownerID string, petID int, name string) error {
	if name == "" {
		return fmt.Errorf("%w: pet name required", domain.ErrInvalidInput)
	}

	pet, err := s.repo.GetPet(ctx, petID)
	if err != nil {
		return err
	}
	if pet.OwnerID != ownerID {
		return fmt.Errorf("%w: pet %d", domain.ErrPetNotOwned, petID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, ownerID); err != nil {
		return err
	}
	scroll, err := tx.GetItemByName(ctx, domain.ItemRenameScroll)
	if err != nil {
		return err
	}
	if err := tx.RemoveInventory(ctx, ownerID, scroll.ID, 1); err != nil {
		return err
	}
	if err := tx.RenamePet(ctx, petID, name); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Pet renamed", "owner", ownerID, "pet_id", petID, "name", name)
	return nil
}

func (s *service) RemovePet(ctx context.Context, ownerID string, petID int) error {
	pet, err := s.repo.GetPet(ctx, petID)
	if err != nil {
		return err
	}
	if pet.OwnerID != ownerID {
		return fmt.Errorf("%w: pet %d", domain.ErrPetNotOwned, petID)
	}
	return s.repo.DeletePet(ctx, petID)
}

func (s *service) RunHourlyGrowth(ctx context.Context) (int, error) {
	grown, err := s.repo.IncrementActivePetLevels(ctx, domain.HourlyGrowthIncrement)
	if err != nil {
		return 0, fmt.Errorf("hourly pet growth failed: %w", err)
	}
	logger.FromContext(ctx).Info("Hourly pet growth applied", "pets_grown", grown)
	return grown, nil
}
