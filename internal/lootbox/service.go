package lootbox

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/pet"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// Reward payout amounts per branch.
const (
	commonCoinReward   = 1000
	uncommonCoinReward = 10000
	pixiePouchReward   = 1
	stardustReward     = 1
)

// OpenResult reports one opened box. Exactly one reward field group is set.
type OpenResult struct {
	Rarity         Rarity      `json:"rarity"`
	CoinsGained    int64       `json:"coins_gained,omitempty"`
	PouchesGained  int64       `json:"pouches_gained,omitempty"`
	StardustGained int64       `json:"stardust_gained,omitempty"`
	ItemGranted    string      `json:"item_granted,omitempty"`
	PetGranted     *domain.Pet `json:"pet_granted,omitempty"`
}

// Service opens mystery boxes. Box consumption and the reward land in one
// transaction: a failure after the box is consumed rolls the consumption
// back too.
type Service interface {
	Open(ctx context.Context, accountID string) (*OpenResult, error)
}

type service struct {
	repo repository.Economy
	rnd  func() float64
	now  func() time.Time
}

// NewService creates a new lootbox service
func NewService(repo repository.Economy) Service {
	return &service{repo: repo, rnd: rand.Float64, now: time.Now}
}

func (s *service) Open(ctx context.Context, accountID string) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, accountID); err != nil {
		return nil, err
	}
	box, err := tx.GetItemByName(ctx, domain.ItemMysteryBox)
	if err != nil {
		return nil, err
	}
	if err := tx.RemoveInventory(ctx, accountID, box.ID, 1); err != nil {
		if errors.Is(err, domain.ErrItemNotOwned) {
			return nil, fmt.Errorf("%w: no %s to open", domain.ErrNoBoxOwned, domain.ItemMysteryBox)
		}
		return nil, err
	}

	result := &OpenResult{Rarity: ResolveRarity(s.rnd())}
	// Each rarity splits 50/50 into two reward branches on a second draw.
	highBranch := s.rnd() < 0.5
	if err := s.applyReward(ctx, tx, accountID, box.ID, result, highBranch); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Loot box opened", "account", accountID, "rarity", result.Rarity)
	return result, nil
}

func (s *service) applyReward(ctx context.Context, tx repository.EconomyTx, accountID string, boxItemID int, result *OpenResult, highBranch bool) error {
	switch result.Rarity {
	case RarityCommon:
		if highBranch {
			scroll, err := tx.GetItemByName(ctx, domain.ItemRenameScroll)
			if err != nil {
				return err
			}
			if err := tx.AddInventory(ctx, accountID, scroll.ID, 1); err != nil {
				return err
			}
			result.ItemGranted = scroll.Name
			return nil
		}
		result.CoinsGained = commonCoinReward
		return tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, commonCoinReward)

	case RarityUncommon:
		if highBranch {
			result.CoinsGained = uncommonCoinReward
			return tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, uncommonCoinReward)
		}
		// The box pays itself forward.
		if err := tx.AddInventory(ctx, accountID, boxItemID, 1); err != nil {
			return err
		}
		result.ItemGranted = domain.ItemMysteryBox
		return nil

	case RarityRare:
		if highBranch {
			return s.grantPet(ctx, tx, accountID, domain.TierRare, result)
		}
		result.PouchesGained = pixiePouchReward
		return tx.AdjustCurrency(ctx, accountID, domain.CurrencyPixiePouches, pixiePouchReward)

	case RarityEpic:
		if highBranch {
			result.StardustGained = stardustReward
			return tx.AdjustCurrency(ctx, accountID, domain.CurrencyStardust, stardustReward)
		}
		return s.grantPet(ctx, tx, accountID, domain.TierEpic, result)
	}
	return fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, result.Rarity)
}

func (s *service) grantPet(ctx context.Context, tx repository.EconomyTx, accountID string, tier domain.PetTier, result *OpenResult) error {
	rolled := pet.Roll(accountID, tier, s.rnd, s.now())
	// The first pet an owner receives becomes active, same as direct grants.
	if _, err := tx.GetActivePetForUpdate(ctx, accountID); err != nil {
		if !errors.Is(err, domain.ErrNoActivePet) {
			return err
		}
		rolled.IsActive = true
	}
	created, err := tx.CreatePet(ctx, rolled)
	if err != nil {
		return err
	}
	result.PetGranted = created
	return nil
}
