// Package event is the in-process event bus. Services stay synchronous;
// the bus carries after-the-fact notifications (metrics, announcements) so
// subscribers never sit inside a database transaction.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Economy and progression event types.
const (
	TypeItemBought     Type = "item.bought"
	TypeItemSold       Type = "item.sold"
	TypeItemGifted     Type = "item.gifted"
	TypeCoinsGiven     Type = "coins.given"
	TypeGambleResolved Type = "gamble.resolved"
	TypeLootBoxOpened  Type = "lootbox.opened"
	TypeCraftCollected Type = "craft.collected"
	TypeItemEnchanted  Type = "item.enchanted"
	TypePetGranted     Type = "pet.granted"
	TypeChatReward     Type = "accrual.chat_reward"
	TypeVoiceReward    Type = "accrual.voice_reward"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads

// TradePayloadV1 covers buys, sells and gifts.
type TradePayloadV1 struct {
	AccountID   string `json:"account_id"`
	RecipientID string `json:"recipient_id,omitempty"`
	ItemName    string `json:"item_name"`
	Quantity    int    `json:"quantity"`
	Coins       int64  `json:"coins,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// TransferPayloadV1 is the typed payload for direct coin transfers.
type TransferPayloadV1 struct {
	FromID    string `json:"from_id"`
	ToID      string `json:"to_id"`
	Amount    int64  `json:"amount"`
	Timestamp int64  `json:"timestamp"`
}

// OutcomePayloadV1 covers the outcome engines: gamble tier, loot-box rarity,
// forge and enchant quality.
type OutcomePayloadV1 struct {
	AccountID string `json:"account_id"`
	Outcome   string `json:"outcome"`
	ItemName  string `json:"item_name,omitempty"`
	Coins     int64  `json:"coins,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// PetGrantPayloadV1 is the typed payload for pet grants.
type PetGrantPayloadV1 struct {
	AccountID string `json:"account_id"`
	Species   string `json:"species"`
	Tier      string `json:"tier"`
	Timestamp int64  `json:"timestamp"`
}

// AccrualPayloadV1 is the typed payload for passive accrual awards.
type AccrualPayloadV1 struct {
	AccountID string `json:"account_id"`
	Coins     int64  `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewTradeEvent creates a buy/sell/gift event.
func NewTradeEvent(eventType Type, accountID, recipientID, itemName string, quantity int, coins int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: TradePayloadV1{
			AccountID:   accountID,
			RecipientID: recipientID,
			ItemName:    itemName,
			Quantity:    quantity,
			Coins:       coins,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewTransferEvent creates a coin transfer event.
func NewTransferEvent(fromID, toID string, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypeCoinsGiven,
		Payload: TransferPayloadV1{
			FromID:    fromID,
			ToID:      toID,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewOutcomeEvent creates an outcome engine event.
func NewOutcomeEvent(eventType Type, accountID, outcome, itemName string, coins int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: OutcomePayloadV1{
			AccountID: accountID,
			Outcome:   outcome,
			ItemName:  itemName,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPetGrantEvent creates a pet grant event.
func NewPetGrantEvent(accountID, species, tier string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TypePetGranted,
		Payload: PetGrantPayloadV1{
			AccountID: accountID,
			Species:   species,
			Tier:      tier,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewAccrualEvent creates a passive accrual event.
func NewAccrualEvent(eventType Type, accountID string, coins int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: AccrualPayloadV1{
			AccountID: accountID,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; a failing handler does not stop the rest.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
