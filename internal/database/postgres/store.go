package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// querier is the subset of pgx shared by pools and transactions, so the row
// helpers below serve both.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const accountColumns = `account_id, coins, pixie_pouches, stardust,
	forge_level, enchant_level, daily_give_amount, daily_give_date,
	last_text_reward_at, last_voice_reward_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID, &a.Coins, &a.PixiePouches, &a.Stardust,
		&a.ForgeLevel, &a.EnchantLevel, &a.DailyGiveAmount, &a.DailyGiveDate,
		&a.LastTextRewardAt, &a.LastVoiceRewardAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func getAccount(ctx context.Context, q querier, accountID string) (*domain.Account, error) {
	account, err := scanAccount(q.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_id = $1`,
		accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func getOrCreateAccount(ctx context.Context, q querier, accountID string) (*domain.Account, error) {
	_, err := q.Exec(ctx,
		`INSERT INTO accounts (account_id) VALUES ($1) ON CONFLICT (account_id) DO NOTHING`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure account: %w", err)
	}
	return getAccount(ctx, q, accountID)
}

const itemColumns = `item_id, item_name, COALESCE(item_description, ''),
	cost, kind, COALESCE(role_link_id, ''), seasonal`

func scanItem(row pgx.Row) (*domain.Item, error) {
	var i domain.Item
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Cost, &i.Kind, &i.RoleLinkID, &i.Seasonal)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func getItemByName(ctx context.Context, q querier, name string) (*domain.Item, error) {
	item, err := scanItem(q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCatalogMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item by name: %w", err)
	}
	return item, nil
}

func getItemByID(ctx context.Context, q querier, itemID int) (*domain.Item, error) {
	item, err := scanItem(q.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE item_id = $1`, itemID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCatalogMissing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item by id: %w", err)
	}
	return item, nil
}

const petColumns = `pet_id, owner_id, species, tier, COALESCE(pet_name, ''),
	level, acquired_at, is_active`

func scanPet(row pgx.Row) (*domain.Pet, error) {
	var p domain.Pet
	err := row.Scan(&p.ID, &p.OwnerID, &p.Species, &p.Tier, &p.Name,
		&p.Level, &p.AcquiredAt, &p.IsActive)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
