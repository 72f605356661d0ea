package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
)

type BuyItemRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	ItemName  string `json:"item_name" validate:"required,max=100"`
	Quantity  int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleBuyItem purchases catalog items with coins.
func HandleBuyItem(svc ledger.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req BuyItemRequest
		if !DecodeAndValidateRequest(w, r, &req, "Buy item") {
			return
		}

		result, err := svc.BuyItem(r.Context(), req.AccountID, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Buy item", err)
			return
		}

		log.Info("Item bought",
			"account_id", req.AccountID,
			"item", result.ItemName,
			"quantity", result.Quantity,
			"coins_spent", result.CoinsSpent)

		publishEvent(r.Context(), eventBus, event.NewTradeEvent(
			event.TypeItemBought, req.AccountID, "", result.ItemName, result.Quantity, result.CoinsSpent))

		respondJSON(w, http.StatusOK, result)
	}
}

type SellItemRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	ItemName  string `json:"item_name" validate:"required,max=100"`
	Quantity  int    `json:"quantity" validate:"min=1,max=10000"`
}

// HandleSellItem sells owned items back to the store at half cost.
func HandleSellItem(svc ledger.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req SellItemRequest
		if !DecodeAndValidateRequest(w, r, &req, "Sell item") {
			return
		}

		result, err := svc.SellItem(r.Context(), req.AccountID, req.ItemName, req.Quantity)
		if err != nil {
			respondServiceError(w, r, "Sell item", err)
			return
		}

		log.Info("Item sold",
			"account_id", req.AccountID,
			"item", result.ItemName,
			"quantity", result.ItemsSold,
			"coins_gained", result.CoinsGained)

		publishEvent(r.Context(), eventBus, event.NewTradeEvent(
			event.TypeItemSold, req.AccountID, "", result.ItemName, result.ItemsSold, result.CoinsGained))

		respondJSON(w, http.StatusOK, result)
	}
}

type GiveCoinsRequest struct {
	FromID string `json:"from_account_id" validate:"required,max=64"`
	ToID   string `json:"to_account_id" validate:"required,max=64"`
	Amount int64  `json:"amount" validate:"min=1,max=1000000"`
}

// HandleGiveCoins transfers coins between accounts, capped by the sender's
// daily allowance.
func HandleGiveCoins(svc ledger.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req GiveCoinsRequest
		if !DecodeAndValidateRequest(w, r, &req, "Give coins") {
			return
		}

		result, err := svc.GiveCoins(r.Context(), req.FromID, req.ToID, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Give coins", err)
			return
		}

		log.Info("Coins given",
			"from", req.FromID,
			"to", req.ToID,
			"amount", result.Amount,
			"remaining_today", result.RemainingToday)

		publishEvent(r.Context(), eventBus, event.NewTransferEvent(req.FromID, req.ToID, result.Amount))

		respondJSON(w, http.StatusOK, result)
	}
}

type GiftItemRequest struct {
	FromID   string `json:"from_account_id" validate:"required,max=64"`
	ToID     string `json:"to_account_id" validate:"required,max=64"`
	ItemName string `json:"item_name" validate:"required,max=100"`
}

// HandleGiftItem moves one unit of an owned item to another account.
func HandleGiftItem(svc ledger.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req GiftItemRequest
		if !DecodeAndValidateRequest(w, r, &req, "Gift item") {
			return
		}

		if err := svc.GiftItem(r.Context(), req.FromID, req.ToID, req.ItemName); err != nil {
			respondServiceError(w, r, "Gift item", err)
			return
		}

		log.Info("Item gifted", "from", req.FromID, "to", req.ToID, "item", req.ItemName)

		publishEvent(r.Context(), eventBus, event.NewTradeEvent(
			event.TypeItemGifted, req.FromID, req.ToID, req.ItemName, 1, 0))

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item gifted"})
	}
}
