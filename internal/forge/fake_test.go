package forge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// fakeStore is an in-memory repository.Craft. Transactions stage a deep copy
// and swap it in on Commit, so rollback behavior is observable.
type fakeStore struct {
	accounts  map[string]*domain.Account
	inventory map[string]map[int]int
	jobs      map[uuid.UUID]*domain.CraftJob
	items     map[string]*domain.Item
	nextItem  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  make(map[string]*domain.Account),
		inventory: make(map[string]map[int]int),
		jobs:      make(map[uuid.UUID]*domain.CraftJob),
		items:     make(map[string]*domain.Item),
		nextItem:  1,
	}
}

func (f *fakeStore) GetOrCreateAccount(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := f.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	a := &domain.Account{ID: id, ForgeLevel: 1, EnchantLevel: 1}
	f.accounts[id] = a
	cp := *a
	return &cp, nil
}

func (f *fakeStore) GetIncompleteJob(_ context.Context, ownerID string) (*domain.CraftJob, error) {
	for _, j := range f.jobs {
		if j.OwnerID == ownerID && !j.IsComplete {
			cp := *j
			return &cp, nil
		}
	}
	return nil, domain.ErrNoActiveJob
}

func (f *fakeStore) GetItemByName(_ context.Context, name string) (*domain.Item, error) {
	if item, ok := f.items[name]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrCatalogMissing
}

func (f *fakeStore) BeginTx(_ context.Context) (repository.CraftTx, error) {
	tx := &fakeTx{store: f,
		accounts:  make(map[string]*domain.Account, len(f.accounts)),
		inventory: make(map[string]map[int]int, len(f.inventory)),
		jobs:      make(map[uuid.UUID]*domain.CraftJob, len(f.jobs)),
	}
	for id, a := range f.accounts {
		cp := *a
		tx.accounts[id] = &cp
	}
	for id, items := range f.inventory {
		inner := make(map[int]int, len(items))
		for itemID, qty := range items {
			inner[itemID] = qty
		}
		tx.inventory[id] = inner
	}
	for id, j := range f.jobs {
		cp := *j
		tx.jobs[id] = &cp
	}
	return tx, nil
}

type fakeTx struct {
	store     *fakeStore
	accounts  map[string]*domain.Account
	inventory map[string]map[int]int
	jobs      map[uuid.UUID]*domain.CraftJob
	closed    bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.store.accounts = t.accounts
	t.store.inventory = t.inventory
	t.store.jobs = t.jobs
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

func (t *fakeTx) GetInventoryQuantity(_ context.Context, id string, itemID int) (int, error) {
	return t.inventory[id][itemID], nil
}

func (t *fakeTx) AddInventory(_ context.Context, id string, itemID, qty int) error {
	if t.inventory[id] == nil {
		t.inventory[id] = make(map[int]int)
	}
	t.inventory[id][itemID] += qty
	return nil
}

func (t *fakeTx) RemoveInventory(_ context.Context, id string, itemID, qty int) error {
	held := t.inventory[id][itemID]
	if held < qty {
		return fmt.Errorf("%w: need %d of item %d", domain.ErrItemNotOwned, qty, itemID)
	}
	if held == qty {
		delete(t.inventory[id], itemID)
	} else {
		t.inventory[id][itemID] = held - qty
	}
	return nil
}

func (t *fakeTx) GetIncompleteJobForUpdate(_ context.Context, ownerID string) (*domain.CraftJob, error) {
	for _, j := range t.jobs {
		if j.OwnerID == ownerID && !j.IsComplete {
			cp := *j
			return &cp, nil
		}
	}
	return nil, domain.ErrNoActiveJob
}

func (t *fakeTx) CreateCraftJob(_ context.Context, job *domain.CraftJob) error {
	cp := *job
	t.jobs[cp.ID] = &cp
	return nil
}

func (t *fakeTx) CompleteCraftJob(_ context.Context, jobID uuid.UUID) error {
	j, ok := t.jobs[jobID]
	if !ok || j.IsComplete {
		return domain.ErrNoActiveJob
	}
	j.IsComplete = true
	return nil
}

func (t *fakeTx) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return t.store.GetItemByName(ctx, name)
}

func (t *fakeTx) GetItemByID(_ context.Context, itemID int) (*domain.Item, error) {
	for _, item := range t.store.items {
		if item.ID == itemID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrCatalogMissing
}

func (t *fakeTx) FindOrCreateItem(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if existing, ok := t.store.items[item.Name]; ok {
		cp := *existing
		return &cp, nil
	}
	cp := *item
	cp.ID = t.store.nextItem
	t.store.nextItem++
	t.store.items[cp.Name] = &cp
	out := cp
	return &out, nil
}
