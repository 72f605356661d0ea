package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// fakeStore is an in-memory repository.Ledger. Transactions mutate a deep
// copy and swap it in on Commit, so rollbacks behave like the real store.
type fakeStore struct {
	accounts  map[string]*domain.Account
	inventory map[string]map[int]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  make(map[string]*domain.Account),
		inventory: make(map[string]map[int]int),
	}
}

func (f *fakeStore) ensure(accountID string) *domain.Account {
	if a, ok := f.accounts[accountID]; ok {
		return a
	}
	a := &domain.Account{ID: accountID, ForgeLevel: 1, EnchantLevel: 1}
	f.accounts[accountID] = a
	return a
}

func (f *fakeStore) GetOrCreateAccount(_ context.Context, accountID string) (*domain.Account, error) {
	cp := *f.ensure(accountID)
	return &cp, nil
}

func (f *fakeStore) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	a, ok := f.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) GetInventory(_ context.Context, accountID string) ([]domain.InventoryEntry, error) {
	var entries []domain.InventoryEntry
	for itemID, qty := range f.inventory[accountID] {
		entries = append(entries, domain.InventoryEntry{AccountID: accountID, ItemID: itemID, Quantity: qty})
	}
	return entries, nil
}

func (f *fakeStore) BeginTx(_ context.Context) (repository.LedgerTx, error) {
	return &fakeTx{store: f, accounts: copyAccounts(f.accounts), inventory: copyInventory(f.inventory)}, nil
}

func copyAccounts(src map[string]*domain.Account) map[string]*domain.Account {
	dst := make(map[string]*domain.Account, len(src))
	for id, a := range src {
		cp := *a
		dst[id] = &cp
	}
	return dst
}

func copyInventory(src map[string]map[int]int) map[string]map[int]int {
	dst := make(map[string]map[int]int, len(src))
	for id, items := range src {
		inner := make(map[int]int, len(items))
		for itemID, qty := range items {
			inner[itemID] = qty
		}
		dst[id] = inner
	}
	return dst
}

type fakeTx struct {
	store     *fakeStore
	accounts  map[string]*domain.Account
	inventory map[string]map[int]int
	closed    bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.store.accounts = t.accounts
	t.store.inventory = t.inventory
	t.closed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *fakeTx) ensure(accountID string) *domain.Account {
	if a, ok := t.accounts[accountID]; ok {
		return a
	}
	a := &domain.Account{ID: accountID, ForgeLevel: 1, EnchantLevel: 1}
	t.accounts[accountID] = a
	return a
}

func (t *fakeTx) GetAccountForUpdate(_ context.Context, accountID string) (*domain.Account, error) {
	cp := *t.ensure(accountID)
	return &cp, nil
}

func (t *fakeTx) GetAccountsForUpdate(_ context.Context, accountIDs []string) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		cp := *t.ensure(id)
		out[id] = &cp
	}
	return out, nil
}

func (t *fakeTx) AdjustCurrency(_ context.Context, accountID string, currency domain.Currency, delta int64) error {
	a := t.ensure(accountID)
	next := a.Balance(currency) + delta
	if next < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInsufficientFunds, currency)
	}
	switch currency {
	case domain.CurrencyCoins:
		a.Coins = next
	case domain.CurrencyPixiePouches:
		a.PixiePouches = next
	case domain.CurrencyStardust:
		a.Stardust = next
	}
	return nil
}

func (t *fakeTx) SetSkillLevels(_ context.Context, accountID string, forgeLevel, enchantLevel int) error {
	a := t.ensure(accountID)
	a.ForgeLevel = forgeLevel
	a.EnchantLevel = enchantLevel
	return nil
}

func (t *fakeTx) SetDailyGive(_ context.Context, accountID string, amount int64, day time.Time) error {
	a := t.ensure(accountID)
	a.DailyGiveAmount = amount
	a.DailyGiveDate = day
	return nil
}

func (t *fakeTx) SetLastTextReward(_ context.Context, accountID string, at time.Time) error {
	t.ensure(accountID).LastTextRewardAt = &at
	return nil
}

func (t *fakeTx) SetLastVoiceReward(_ context.Context, accountID string, at time.Time) error {
	t.ensure(accountID).LastVoiceRewardAt = &at
	return nil
}

func (t *fakeTx) GetInventoryQuantity(_ context.Context, accountID string, itemID int) (int, error) {
	return t.inventory[accountID][itemID], nil
}

func (t *fakeTx) AddInventory(_ context.Context, accountID string, itemID, qty int) error {
	if t.inventory[accountID] == nil {
		t.inventory[accountID] = make(map[int]int)
	}
	t.inventory[accountID][itemID] += qty
	return nil
}

func (t *fakeTx) RemoveInventory(_ context.Context, accountID string, itemID, qty int) error {
	held := t.inventory[accountID][itemID]
	if held < qty {
		return fmt.Errorf("%w: need %d of item %d", domain.ErrItemNotOwned, qty, itemID)
	}
	if held == qty {
		delete(t.inventory[accountID], itemID)
		return nil
	}
	t.inventory[accountID][itemID] = held - qty
	return nil
}
