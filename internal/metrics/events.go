package metrics

import (
	"context"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all event types the collector records.
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.TypeItemBought,
		event.TypeItemSold,
		event.TypeItemGifted,
		event.TypeCoinsGiven,
		event.TypeGambleResolved,
		event.TypeLootBoxOpened,
		event.TypeCraftCollected,
		event.TypeItemEnchanted,
		event.TypePetGranted,
		event.TypeChatReward,
		event.TypeVoiceReward,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TypeItemBought, event.TypeItemSold, event.TypeItemGifted:
		payload, err := event.DecodePayload[event.TradePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		switch evt.Type {
		case event.TypeItemBought:
			ItemsBought.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		case event.TypeItemSold:
			ItemsSold.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		case event.TypeItemGifted:
			ItemsGifted.WithLabelValues(payload.ItemName).Add(float64(payload.Quantity))
		}

	case event.TypeCoinsGiven:
		payload, err := event.DecodePayload[event.TransferPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CoinsGiven.Add(float64(payload.Amount))

	case event.TypeGambleResolved, event.TypeLootBoxOpened,
		event.TypeCraftCollected, event.TypeItemEnchanted:
		payload, err := event.DecodePayload[event.OutcomePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		switch evt.Type {
		case event.TypeGambleResolved:
			GambleOutcomes.WithLabelValues(payload.Outcome).Inc()
		case event.TypeLootBoxOpened:
			LootBoxesOpened.WithLabelValues(payload.Outcome).Inc()
		case event.TypeCraftCollected:
			CraftsCollected.WithLabelValues(payload.Outcome).Inc()
		case event.TypeItemEnchanted:
			EnchantsApplied.WithLabelValues(payload.Outcome).Inc()
		}

	case event.TypePetGranted:
		payload, err := event.DecodePayload[event.PetGrantPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PetsGranted.WithLabelValues(payload.Tier).Inc()

	case event.TypeChatReward, event.TypeVoiceReward:
		payload, err := event.DecodePayload[event.AccrualPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		stream := "chat"
		if evt.Type == event.TypeVoiceReward {
			stream = "voice"
		}
		AccrualCoins.WithLabelValues(stream).Add(float64(payload.Coins))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
