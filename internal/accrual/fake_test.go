package accrual

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// fakeStore is an in-memory repository.Ledger covering the account surface;
// accrual never touches inventory.
type fakeStore struct {
	accounts map[string]*domain.Account
}

func newFakeStore() *fakeStore {
	return &fakeStore{accounts: make(map[string]*domain.Account)}
}

func (f *fakeStore) ensure(id string) *domain.Account {
	if a, ok := f.accounts[id]; ok {
		return a
	}
	a := &domain.Account{ID: id, ForgeLevel: 1, EnchantLevel: 1}
	f.accounts[id] = a
	return a
}

func (f *fakeStore) GetOrCreateAccount(_ context.Context, id string) (*domain.Account, error) {
	cp := *f.ensure(id)
	return &cp, nil
}

func (f *fakeStore) GetAccount(_ context.Context, id string) (*domain.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) GetInventory(_ context.Context, id string) ([]domain.InventoryEntry, error) {
	return nil, nil
}

func (f *fakeStore) BeginTx(_ context.Context) (repository.LedgerTx, error) {
	staged := make(map[string]*domain.Account, len(f.accounts))
	for id, a := range f.accounts {
		cp := *a
		staged[id] = &cp
	}
	return &fakeTx{store: f, accounts: staged}, nil
}

// fakeTx stages account changes and applies them on Commit.
type fakeTx struct {
	store    *fakeStore
	accounts map[string]*domain.Account
	closed   bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.store.accounts = t.accounts
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

func (t *fakeTx) ensure(id string) *domain.Account {
	if a, ok := t.accounts[id]; ok {
		return a
	}
	a := &domain.Account{ID: id, ForgeLevel: 1, EnchantLevel: 1}
	t.accounts[id] = a
	return a
}

func (t *fakeTx) GetAccountForUpdate(_ context.Context, id string) (*domain.Account, error) {
	cp := *t.ensure(id)
	return &cp, nil
}

func (t *fakeTx) GetAccountsForUpdate(_ context.Context, ids []string) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account, len(ids))
	for _, id := range ids {
		cp := *t.ensure(id)
		out[id] = &cp
	}
	return out, nil
}

func (t *fakeTx) AdjustCurrency(_ context.Context, id string, currency domain.Currency, delta int64) error {
	a := t.ensure(id)
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

func (t *fakeTx) SetSkillLevels(_ context.Context, id string, forge, enchant int) error {
	a := t.ensure(id)
	a.ForgeLevel, a.EnchantLevel = forge, enchant
	return nil
}

func (t *fakeTx) SetDailyGive(_ context.Context, id string, amount int64, day time.Time) error {
	a := t.ensure(id)
	a.DailyGiveAmount, a.DailyGiveDate = amount, day
	return nil
}

func (t *fakeTx) SetLastTextReward(_ context.Context, id string, at time.Time) error {
	t.ensure(id).LastTextRewardAt = &at
	return nil
}

func (t *fakeTx) SetLastVoiceReward(_ context.Context, id string, at time.Time) error {
	t.ensure(id).LastVoiceRewardAt = &at
	return nil
}

func (t *fakeTx) GetInventoryQuantity(context.Context, string, int) (int, error) { return 0, nil }
func (t *fakeTx) AddInventory(context.Context, string, int, int) error          { return nil }
func (t *fakeTx) RemoveInventory(context.Context, string, int, int) error {
	return domain.ErrItemNotOwned
}
