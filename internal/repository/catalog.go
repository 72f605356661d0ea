package repository

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// Catalog defines the persistence surface for item definitions.
type Catalog interface {
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	GetItemByID(ctx context.Context, itemID int) (*domain.Item, error)
	ListItems(ctx context.Context, seasonal bool) ([]domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error

	// DeleteItem removes a definition; inventory rows referencing it cascade.
	DeleteItem(ctx context.Context, itemID int) error
}
