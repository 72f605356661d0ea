package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// CatalogRepository implements the catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetItemByName retrieves an item definition by name.
func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return getItemByName(ctx, r.db, name)
}

// GetItemByID retrieves an item definition by id.
func (r *CatalogRepository) GetItemByID(ctx context.Context, itemID int) (*domain.Item, error) {
	return getItemByID(ctx, r.db, itemID)
}

// ListItems returns every definition in the requested seasonal bucket.
func (r *CatalogRepository) ListItems(ctx context.Context, seasonal bool) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE seasonal = $1 ORDER BY item_name`,
		seasonal)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

// CreateItem inserts a new definition and returns it with its assigned id.
func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	created := *item
	err := r.db.QueryRow(ctx,
		`INSERT INTO items (item_name, item_description, cost, kind, role_link_id, seasonal)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING item_id`,
		item.Name, item.Description, item.Cost, item.Kind, item.RoleLinkID, item.Seasonal,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &created, nil
}

// UpdateItem overwrites an existing definition.
func (r *CatalogRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE items
		 SET item_name = $2, item_description = $3, cost = $4, kind = $5,
		     role_link_id = NULLIF($6, ''), seasonal = $7
		 WHERE item_id = $1`,
		item.ID, item.Name, item.Description, item.Cost, item.Kind, item.RoleLinkID, item.Seasonal)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: item %d", domain.ErrCatalogMissing, item.ID)
	}
	return nil
}

// DeleteItem removes a definition; inventory rows referencing it cascade.
func (r *CatalogRepository) DeleteItem(ctx context.Context, itemID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: item %d", domain.ErrCatalogMissing, itemID)
	}
	return nil
}
