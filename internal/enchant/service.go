package enchant

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/progression"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// EnchantmentSource resolves enchantments by name or by random draw.
// Satisfied by catalog.Service.
type EnchantmentSource interface {
	Enchantments() []catalog.Enchantment
	GetEnchantment(name string) (*catalog.Enchantment, error)
	PickEnchantment(rnd func() float64) catalog.Enchantment
}

// Result reports one applied enchant.
type Result struct {
	ItemName        string  `json:"item_name"`
	Enchantment     string  `json:"enchantment"`
	Quality         Quality `json:"quality"`
	ItemValue       int     `json:"item_value"`
	XPAwarded       int     `json:"xp_awarded"`
	LevelsGained    int     `json:"levels_gained"`
	NewEnchantLevel int     `json:"new_enchant_level"`
}

// Service applies enchantments to owned items, consuming the base item and
// materializing the enchanted definition.
type Service interface {
	// Enchant applies the named enchantment to one owned unit of itemName.
	// An empty enchantment name picks one at random.
	Enchant(ctx context.Context, accountID, itemName, enchantment string) (*Result, error)
	ListEnchantments() []catalog.Enchantment
}

type service struct {
	repo         repository.Craft
	enchantments EnchantmentSource
	rnd          func() float64
}

// NewService creates a new enchant service
func NewService(repo repository.Craft, enchantments EnchantmentSource) Service {
	return &service{repo: repo, enchantments: enchantments, rnd: rand.Float64}
}

func (s *service) ListEnchantments() []catalog.Enchantment {
	return s.enchantments.Enchantments()
}

func (s *service) Enchant(ctx context.Context, accountID, itemName, enchantment string) (*Result, error) {
	if itemName == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}

	var ench catalog.Enchantment
	if enchantment == "" {
		ench = s.enchantments.PickEnchantment(s.rnd)
	} else {
		found, err := s.enchantments.GetEnchantment(enchantment)
		if err != nil {
			return nil, err
		}
		ench = *found
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return nil, err
	}
	base, err := tx.GetItemByName(ctx, itemName)
	if err != nil {
		return nil, err
	}
	if s.isEnchanted(base.Name) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyEnchanted, base.Name)
	}
	if err := tx.RemoveInventory(ctx, accountID, base.ID, 1); err != nil {
		return nil, err
	}

	quality := ResolveQuality(account.EnchantLevel, s.rnd())
	value := int(float64(base.Cost) * quality.Multiplier())

	output, err := tx.FindOrCreateItem(ctx, &domain.Item{
		Name:        enchantedName(base.Name, ench, quality),
		Description: ench.Description,
		Cost:        value,
		Kind:        base.Kind,
	})
	if err != nil {
		return nil, err
	}
	if err := tx.AddInventory(ctx, accountID, output.ID, 1); err != nil {
		return nil, err
	}

	xp := progression.EnchantXP(account.EnchantLevel)
	levels := progression.LevelsGained(xp)
	newLevel := account.EnchantLevel + levels
	if levels > 0 {
		if err := tx.SetSkillLevels(ctx, accountID, account.ForgeLevel, newLevel); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Item enchanted", "account", accountID,
		"item", output.Name, "quality", quality, "xp", xp)
	return &Result{
		ItemName:        output.Name,
		Enchantment:     ench.Name,
		Quality:         quality,
		ItemValue:       value,
		XPAwarded:       xp,
		LevelsGained:    levels,
		NewEnchantLevel: newLevel,
	}, nil
}

// isEnchanted reports whether a name already carries any known suffix. An
// enchanted item cannot be enchanted again.
func (s *service) isEnchanted(name string) bool {
	for _, e := range s.enchantments.Enchantments() {
		if e.Suffix != "" && strings.Contains(name, e.Suffix) {
			return true
		}
	}
	return false
}

// enchantedName is the catalog name of an enchanted item. Standard output
// keeps the plain suffixed name.
func enchantedName(baseName string, ench catalog.Enchantment, quality Quality) string {
	name := baseName + ench.Suffix
	if quality == QualityStandard {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, quality)
}
