package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// Service exposes item definitions, forge recipes and the enchantment
// catalog. Definition reads go through an expiring cache; admin writes
// invalidate it.
type Service interface {
	GetItem(ctx context.Context, name string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListStore(ctx context.Context, seasonal bool) ([]domain.Item, error)

	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID int) error

	Recipes() []Recipe
	GetRecipe(name string) (*Recipe, error)
	Enchantments() []Enchantment
	GetEnchantment(name string) (*Enchantment, error)
	PickEnchantment(rnd func() float64) Enchantment
}

type service struct {
	repo         repository.Catalog
	cache        *itemCache
	recipes      []Recipe
	enchantments []Enchantment
}

// NewService loads the embedded configs and returns a catalog service.
func NewService(repo repository.Catalog) (Service, error) {
	recipes, enchantments, err := loadConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog configs: %w", err)
	}
	return &service{
		repo:         repo,
		cache:        newItemCache(defaultCacheSize, defaultCacheTTL),
		recipes:      recipes,
		enchantments: enchantments,
	}, nil
}

// GetItem returns the definition with the given name.
func (s *service) GetItem(ctx context.Context, name string) (*domain.Item, error) {
	if item, ok := s.cache.Get(name); ok {
		return item, nil
	}
	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(item)
	return item, nil
}

// GetItemByID returns the definition with the given id. ID lookups bypass
// the name-keyed cache.
func (s *service) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return s.repo.GetItemByID(ctx, itemID)
}

// ListStore returns the regular or seasonal store page.
func (s *service) ListStore(ctx context.Context, seasonal bool) ([]domain.Item, error) {
	return s.repo.ListItems(ctx, seasonal)
}

// CreateItem validates and inserts a new definition.
func (s *service) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("Item created", "item", created.Name, "kind", created.Kind)
	return created, nil
}

// UpdateItem validates and overwrites a definition.
func (s *service) UpdateItem(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	// The name may have changed; drop both the old and the new key.
	if old, err := s.repo.GetItemByID(ctx, item.ID); err == nil {
		s.cache.Invalidate(old.Name)
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return err
	}
	s.cache.Invalidate(item.Name)
	logger.FromContext(ctx).Info("Item updated", "item", item.Name)
	return nil
}

// DeleteItem removes a definition; inventory rows referencing it cascade.
func (s *service) DeleteItem(ctx context.Context, itemID int) error {
	if item, err := s.repo.GetItemByID(ctx, itemID); err == nil {
		s.cache.Invalidate(item.Name)
	}
	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Item deleted", "item_id", itemID)
	return nil
}

// Recipes returns every forgeable recipe.
func (s *service) Recipes() []Recipe {
	out := make([]Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// GetRecipe returns the recipe with the given name, case-insensitively.
func (s *service) GetRecipe(name string) (*Recipe, error) {
	for i := range s.recipes {
		if strings.EqualFold(s.recipes[i].Name, name) {
			r := s.recipes[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%w: no recipe %q", domain.ErrCatalogMissing, name)
}

// Enchantments returns the enchantment catalog.
func (s *service) Enchantments() []Enchantment {
	out := make([]Enchantment, len(s.enchantments))
	copy(out, s.enchantments)
	return out
}

// GetEnchantment returns the enchantment with the given name,
// case-insensitively.
func (s *service) GetEnchantment(name string) (*Enchantment, error) {
	for i := range s.enchantments {
		if strings.EqualFold(s.enchantments[i].Name, name) {
			e := s.enchantments[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: no enchantment %q", domain.ErrCatalogMissing, name)
}

// PickEnchantment draws one enchantment uniformly.
func (s *service) PickEnchantment(rnd func() float64) Enchantment {
	idx := int(rnd() * float64(len(s.enchantments)))
	if idx >= len(s.enchantments) {
		idx = len(s.enchantments) - 1
	}
	return s.enchantments[idx]
}
