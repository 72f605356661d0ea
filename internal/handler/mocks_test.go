package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/enchant"
	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/forge"
	"github.com/dotworks/PixieBot_Go/internal/gamble"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
	"github.com/dotworks/PixieBot_Go/internal/lootbox"
	"github.com/dotworks/PixieBot_Go/internal/pet"
)

type mockLedgerService struct{ mock.Mock }

func (m *mockLedgerService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *mockLedgerService) GetInventory(ctx context.Context, accountID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *mockLedgerService) AdjustCurrency(ctx context.Context, accountID string, currency domain.Currency, delta int64) (int64, error) {
	args := m.Called(ctx, accountID, currency, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLedgerService) BuyItem(ctx context.Context, accountID, itemName string, quantity int) (*ledger.PurchaseResult, error) {
	args := m.Called(ctx, accountID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.PurchaseResult), args.Error(1)
}

func (m *mockLedgerService) SellItem(ctx context.Context, accountID, itemName string, quantity int) (*ledger.SellResult, error) {
	args := m.Called(ctx, accountID, itemName, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.SellResult), args.Error(1)
}

func (m *mockLedgerService) GiveCoins(ctx context.Context, fromID, toID string, amount int64) (*ledger.GiveResult, error) {
	args := m.Called(ctx, fromID, toID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.GiveResult), args.Error(1)
}

func (m *mockLedgerService) GiftItem(ctx context.Context, fromID, toID, itemName string) error {
	args := m.Called(ctx, fromID, toID, itemName)
	return args.Error(0)
}

type mockGambleService struct{ mock.Mock }

func (m *mockGambleService) Gamble(ctx context.Context, accountID string, stake int64) (*gamble.Result, error) {
	args := m.Called(ctx, accountID, stake)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gamble.Result), args.Error(1)
}

type mockLootboxService struct{ mock.Mock }

func (m *mockLootboxService) Open(ctx context.Context, accountID string) (*lootbox.OpenResult, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lootbox.OpenResult), args.Error(1)
}

type mockForgeService struct{ mock.Mock }

func (m *mockForgeService) StartCraft(ctx context.Context, accountID, recipeName string, durationMinutes int) (*forge.StartResult, error) {
	args := m.Called(ctx, accountID, recipeName, durationMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forge.StartResult), args.Error(1)
}

func (m *mockForgeService) CollectCraft(ctx context.Context, accountID string) (*forge.CollectResult, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forge.CollectResult), args.Error(1)
}

func (m *mockForgeService) GetStatus(ctx context.Context, accountID string) (*forge.Status, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forge.Status), args.Error(1)
}

func (m *mockForgeService) ListRecipes() []catalog.Recipe {
	args := m.Called()
	return args.Get(0).([]catalog.Recipe)
}

type mockEnchantService struct{ mock.Mock }

func (m *mockEnchantService) Enchant(ctx context.Context, accountID, itemName, enchantment string) (*enchant.Result, error) {
	args := m.Called(ctx, accountID, itemName, enchantment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enchant.Result), args.Error(1)
}

func (m *mockEnchantService) ListEnchantments() []catalog.Enchantment {
	args := m.Called()
	return args.Get(0).([]catalog.Enchantment)
}

type mockPetService struct{ mock.Mock }

func (m *mockPetService) ListPets(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *mockPetService) GetActivePet(ctx context.Context, ownerID string) (*domain.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *mockPetService) SetActivePet(ctx context.Context, ownerID string, petID int) (*domain.Pet, error) {
	args := m.Called(ctx, ownerID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *mockPetService) FeedActivePet(ctx context.Context, ownerID string) (*pet.FeedResult, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.FeedResult), args.Error(1)
}

func (m *mockPetService) GrantPet(ctx context.Context, ownerID string, tier domain.PetTier) (*domain.Pet, error) {
	args := m.Called(ctx, ownerID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *mockPetService) OpenPetBox(ctx context.Context, ownerID, boxName string) (*domain.Pet, error) {
	args := m.Called(ctx, ownerID, boxName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pet), args.Error(1)
}

func (m *mockPetService) RenamePet(ctx context.Context, ownerID string, petID int, name string) error {
	args := m.Called(ctx, ownerID, petID, name)
	return args.Error(0)
}

func (m *mockPetService) RemovePet(ctx context.Context, ownerID string, petID int) error {
	args := m.Called(ctx, ownerID, petID)
	return args.Error(0)
}

func (m *mockPetService) RunHourlyGrowth(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockAccrualService struct{ mock.Mock }

func (m *mockAccrualService) TryAwardChatReward(ctx context.Context, accountID string, messageLength int) (*accrual.ChatReward, error) {
	args := m.Called(ctx, accountID, messageLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.ChatReward), args.Error(1)
}

func (m *mockAccrualService) TryAwardVoiceTick(ctx context.Context, accountID string, participants int, streaming bool) (*accrual.VoiceReward, error) {
	args := m.Called(ctx, accountID, participants, streaming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.VoiceReward), args.Error(1)
}

type mockEventBus struct{ mock.Mock }

func (m *mockEventBus) Publish(ctx context.Context, ev event.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *mockEventBus) Subscribe(eventType event.Type, h event.Handler) {
	m.Called(eventType, h)
}
