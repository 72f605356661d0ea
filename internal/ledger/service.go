package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/logger"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// ItemResolver resolves catalog items by name. Satisfied by catalog.Service.
type ItemResolver interface {
	GetItem(ctx context.Context, name string) (*domain.Item, error)
}

// RoleGranter performs the external role grant attached to role-type items.
// A failed grant aborts the purchase so the spend is rolled back.
type RoleGranter interface {
	GrantRole(ctx context.Context, accountID, roleLinkID string) error
}

// PurchaseResult reports a completed purchase.
type PurchaseResult struct {
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	CoinsSpent  int64  `json:"coins_spent"`
	RoleGranted bool   `json:"role_granted"`
}

// SellResult reports a completed sale.
type SellResult struct {
	ItemName    string `json:"item_name"`
	ItemsSold   int    `json:"items_sold"`
	CoinsGained int64  `json:"coins_gained"`
}

// GiveResult reports a coin transfer and the sender's remaining daily
// allowance.
type GiveResult struct {
	Amount         int64 `json:"amount"`
	RemainingToday int64 `json:"remaining_today"`
}

// Service is the ledger store: canonical balances, inventory counts and the
// multi-account transfer units built on them.
type Service interface {
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetInventory(ctx context.Context, accountID string) ([]domain.InventoryEntry, error)

	// AdjustCurrency applies a signed delta to one balance atomically and
	// returns the new balance.
	AdjustCurrency(ctx context.Context, accountID string, currency domain.Currency, delta int64) (int64, error)

	BuyItem(ctx context.Context, accountID, itemName string, quantity int) (*PurchaseResult, error)
	SellItem(ctx context.Context, accountID, itemName string, quantity int) (*SellResult, error)
	GiveCoins(ctx context.Context, fromID, toID string, amount int64) (*GiveResult, error)
	GiftItem(ctx context.Context, fromID, toID, itemName string) error
}

type service struct {
	repo    repository.Ledger
	catalog ItemResolver
	roles   RoleGranter
	now     func() time.Time
}

// NewService creates a new ledger service. roles may be nil when no external
// role backend is wired; purchasing role items then fails cleanly.
func NewService(repo repository.Ledger, catalogSvc ItemResolver, roles RoleGranter) Service {
	return &service{
		repo:    repo,
		catalog: catalogSvc,
		roles:   roles,
		now:     time.Now,
	}
}

func (s *service) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.repo.GetOrCreateAccount(ctx, accountID)
}

func (s *service) GetInventory(ctx context.Context, accountID string) ([]domain.InventoryEntry, error) {
	if _, err := s.repo.GetOrCreateAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, accountID)
}

func (s *service) AdjustCurrency(ctx context.Context, accountID string, currency domain.Currency, delta int64) (int64, error) {
	if !currency.Valid() {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidInput, currency)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	account, err := tx.GetAccountForUpdate(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if err := tx.AdjustCurrency(ctx, accountID, currency, delta); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return account.Balance(currency) + delta, nil
}

// BuyItem spends coins on a catalog item. Role items trigger an external
// role grant instead of an inventory add; if the grant fails the whole unit
// aborts and the spend never lands.
func (s *service) BuyItem(ctx context.Context, accountID, itemName string, quantity int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}

	item, err := s.catalog.GetItem(ctx, itemName)
	if err != nil {
		return nil, err
	}
	if item.Kind == domain.KindRole && quantity != 1 {
		return nil, fmt.Errorf("%w: role items are bought one at a time", domain.ErrInvalidInput)
	}
	cost := int64(item.Cost) * int64(quantity)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, accountID); err != nil {
		return nil, err
	}
	if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, -cost); err != nil {
		return nil, err
	}

	result := &PurchaseResult{ItemName: item.Name, Quantity: quantity, CoinsSpent: cost}
	if item.Kind == domain.KindRole {
		if s.roles == nil {
			return nil, fmt.Errorf("%w: no role backend configured", domain.ErrExternalEffectFailed)
		}
		if err := s.roles.GrantRole(ctx, accountID, item.RoleLinkID); err != nil {
			log.Error("Role grant failed, refunding purchase", "account", accountID, "item", item.Name, "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrExternalEffectFailed, err)
		}
		result.RoleGranted = true
	} else {
		if err := tx.AddInventory(ctx, accountID, item.ID, quantity); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Info("Purchase complete", "account", accountID, "item", item.Name, "quantity", quantity, "cost", cost)
	return result, nil
}

// SellItem sells inventory back to the store at half the catalog cost.
func (s *service) SellItem(ctx context.Context, accountID, itemName string, quantity int) (*SellResult, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}

	item, err := s.catalog.GetItem(ctx, itemName)
	if err != nil {
		return nil, err
	}
	payout := int64(float64(item.Cost)*domain.SellPriceRatio) * int64(quantity)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetAccountForUpdate(ctx, accountID); err != nil {
		return nil, err
	}
	if err := tx.RemoveInventory(ctx, accountID, item.ID, quantity); err != nil {
		return nil, err
	}
	if err := tx.AdjustCurrency(ctx, accountID, domain.CurrencyCoins, payout); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Sale complete", "account", accountID, "item", item.Name, "quantity", quantity, "payout", payout)
	return &SellResult{ItemName: item.Name, ItemsSold: quantity, CoinsGained: payout}, nil
}

// GiveCoins transfers coins between two accounts, capped by the sender's
// daily allowance. The counter lazily resets when the stored day is not
// today.
func (s *service) GiveCoins(ctx context.Context, fromID, toID string, amount int64) (*GiveResult, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if fromID == toID {
		return nil, fmt.Errorf("%w: cannot give coins to yourself", domain.ErrInvalidRecipient)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	accounts, err := tx.GetAccountsForUpdate(ctx, []string{fromID, toID})
	if err != nil {
		return nil, err
	}
	sender := accounts[fromID]

	today := s.today()
	givenToday := sender.DailyGiveAmount
	if !sender.DailyGiveDate.Equal(today) {
		givenToday = 0
	}
	if givenToday+amount > domain.DailyGiveLimit {
		return nil, fmt.Errorf("%w: %d of %d already given today",
			domain.ErrDailyLimitReached, givenToday, domain.DailyGiveLimit)
	}

	if err := tx.AdjustCurrency(ctx, fromID, domain.CurrencyCoins, -amount); err != nil {
		return nil, err
	}
	if err := tx.AdjustCurrency(ctx, toID, domain.CurrencyCoins, amount); err != nil {
		return nil, err
	}
	if err := tx.SetDailyGive(ctx, fromID, givenToday+amount, today); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Coins given", "from", fromID, "to", toID, "amount", amount)
	return &GiveResult{
		Amount:         amount,
		RemainingToday: domain.DailyGiveLimit - givenToday - amount,
	}, nil
}

// GiftItem moves one unit of an item between inventories.
func (s *service) GiftItem(ctx context.Context, fromID, toID, itemName string) error {
	if fromID == toID {
		return fmt.Errorf("%w: cannot gift to yourself", domain.ErrInvalidRecipient)
	}

	item, err := s.catalog.GetItem(ctx, itemName)
	if err != nil {
		return err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Locks both rows in ascending id order and ensures the recipient exists.
	if _, err := tx.GetAccountsForUpdate(ctx, []string{fromID, toID}); err != nil {
		return err
	}
	if err := tx.RemoveInventory(ctx, fromID, item.ID, 1); err != nil {
		return err
	}
	if err := tx.AddInventory(ctx, toID, item.ID, 1); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Item gifted", "from", fromID, "to", toID, "item", item.Name)
	return nil
}

// today returns the current calendar day at midnight UTC, the granularity of
// the daily give counter.
func (s *service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
