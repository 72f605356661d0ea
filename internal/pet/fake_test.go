package pet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/repository"
)

// fakeStore is an in-memory repository.Pet. Unlike the postgres store it
// mutates state in place; rollback coverage lives in the integration tests.
type fakeStore struct {
	accounts  map[string]*domain.Account
	pets      map[int]*domain.Pet
	items     map[string]*domain.Item
	inventory map[string]map[int]int
	nextPetID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*domain.Account),
		pets:     make(map[int]*domain.Pet),
		items: map[string]*domain.Item{
			domain.ItemPetFood:      {ID: 1, Name: domain.ItemPetFood, Cost: 250, Kind: domain.KindPetFood},
			domain.ItemRenameScroll: {ID: 2, Name: domain.ItemRenameScroll, Cost: 1000, Kind: domain.KindRenameScroll},
			domain.ItemPetBoxRare:   {ID: 3, Name: domain.ItemPetBoxRare, Cost: 25000, Kind: domain.KindPetBoxRare},
		},
		inventory: make(map[string]map[int]int),
		nextPetID: 1,
	}
}

func (f *fakeStore) give(accountID string, itemID, qty int) {
	if f.inventory[accountID] == nil {
		f.inventory[accountID] = make(map[int]int)
	}
	f.inventory[accountID][itemID] += qty
}

func (f *fakeStore) ListPets(_ context.Context, ownerID string) ([]domain.Pet, error) {
	var out []domain.Pet
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPet(_ context.Context, petID int) (*domain.Pet, error) {
	p, ok := f.pets[petID]
	if !ok {
		return nil, domain.ErrPetNotOwned
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) GetActivePet(_ context.Context, ownerID string) (*domain.Pet, error) {
	for _, p := range f.pets {
		if p.OwnerID == ownerID && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNoActivePet
}

func (f *fakeStore) SetActivePet(_ context.Context, ownerID string, petID int) (*domain.Pet, error) {
	target, ok := f.pets[petID]
	if !ok || target.OwnerID != ownerID {
		return nil, domain.ErrPetNotOwned
	}
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			p.IsActive = false
		}
	}
	target.IsActive = true
	cp := *target
	return &cp, nil
}

func (f *fakeStore) IncrementActivePetLevels(_ context.Context, delta float64) (int, error) {
	grown := 0
	for _, p := range f.pets {
		if p.IsActive {
			p.Level += delta
			grown++
		}
	}
	return grown, nil
}

func (f *fakeStore) CreatePet(_ context.Context, pet *domain.Pet) (*domain.Pet, error) {
	cp := *pet
	cp.ID = f.nextPetID
	f.nextPetID++
	f.pets[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeStore) DeletePet(_ context.Context, petID int) error {
	if _, ok := f.pets[petID]; !ok {
		return domain.ErrPetNotOwned
	}
	delete(f.pets, petID)
	return nil
}

func (f *fakeStore) RenamePet(_ context.Context, petID int, name string) error {
	p, ok := f.pets[petID]
	if !ok {
		return domain.ErrPetNotOwned
	}
	p.Name = name
	return nil
}

func (f *fakeStore) BeginTx(_ context.Context) (repository.PetTx, error) {
	return &fakeTx{store: f}, nil
}

type fakeTx struct {
	store  *fakeStore
	closed bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
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

func (t *fakeTx) GetAccountForUpdate(_ context.Context, id string) (*domain.Account, error) {
	if a, ok := t.store.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	a := &domain.Account{ID: id, ForgeLevel: 1, EnchantLevel: 1}
	t.store.accounts[id] = a
	cp := *a
	return &cp, nil
}

func (t *fakeTx) GetAccountsForUpdate(ctx context.Context, ids []string) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account, len(ids))
	for _, id := range ids {
		a, err := t.GetAccountForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = a
	}
	return out, nil
}

func (t *fakeTx) AdjustCurrency(_ context.Context, id string, currency domain.Currency, delta int64) error {
	a := t.store.accounts[id]
	if a.Balance(currency)+delta < 0 {
		return domain.ErrInsufficientFunds
	}
	switch currency {
	case domain.CurrencyCoins:
		a.Coins += delta
	case domain.CurrencyPixiePouches:
		a.PixiePouches += delta
	case domain.CurrencyStardust:
		a.Stardust += delta
	}
	return nil
}

func (t *fakeTx) SetSkillLevels(_ context.Context, id string, forge, enchant int) error {
	a := t.store.accounts[id]
	a.ForgeLevel, a.EnchantLevel = forge, enchant
	return nil
}

func (t *fakeTx) SetDailyGive(_ context.Context, id string, amount int64, day time.Time) error {
	a := t.store.accounts[id]
	a.DailyGiveAmount, a.DailyGiveDate = amount, day
	return nil
}

func (t *fakeTx) SetLastTextReward(_ context.Context, id string, at time.Time) error {
	t.store.accounts[id].LastTextRewardAt = &at
	return nil
}

func (t *fakeTx) SetLastVoiceReward(_ context.Context, id string, at time.Time) error {
	t.store.accounts[id].LastVoiceRewardAt = &at
	return nil
}

func (t *fakeTx) GetInventoryQuantity(_ context.Context, id string, itemID int) (int, error) {
	return t.store.inventory[id][itemID], nil
}

func (t *fakeTx) AddInventory(_ context.Context, id string, itemID, qty int) error {
	t.store.give(id, itemID, qty)
	return nil
}

func (t *fakeTx) RemoveInventory(_ context.Context, id string, itemID, qty int) error {
	held := t.store.inventory[id][itemID]
	if held < qty {
		return fmt.Errorf("%w: need %d of item %d", domain.ErrItemNotOwned, qty, itemID)
	}
	if held == qty {
		delete(t.store.inventory[id], itemID)
	} else {
		t.store.inventory[id][itemID] = held - qty
	}
	return nil
}

func (t *fakeTx) CreatePet(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	return t.store.CreatePet(ctx, pet)
}

func (t *fakeTx) GetActivePetForUpdate(ctx context.Context, ownerID string) (*domain.Pet, error) {
	return t.store.GetActivePet(ctx, ownerID)
}

func (t *fakeTx) AdjustPetLevel(_ context.Context, petID int, delta float64) (float64, error) {
	p, ok := t.store.pets[petID]
	if !ok {
		return 0, domain.ErrPetNotOwned
	}
	p.Level += delta
	return p.Level, nil
}

func (t *fakeTx) RenamePet(ctx context.Context, petID int, name string) error {
	return t.store.RenamePet(ctx, petID, name)
}

func (t *fakeTx) GetItemByName(_ context.Context, name string) (*domain.Item, error) {
	if item, ok := t.store.items[name]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, domain.ErrCatalogMissing
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
	cp.ID = 100 + len(t.store.items)
	t.store.items[cp.Name] = &cp
	out := cp
	return &out, nil
}
