package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/lootbox"
)

type OpenBoxRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
}

// HandleOpenBox consumes one mystery box and rolls its reward.
func HandleOpenBox(svc lootbox.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req OpenBoxRequest
		if !DecodeAndValidateRequest(w, r, &req, "Open loot box") {
			return
		}

		result, err := svc.Open(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "Open loot box", err)
			return
		}

		log.Info("Loot box opened",
			"account_id", req.AccountID,
			"rarity", result.Rarity,
			"item", result.ItemGranted,
			"coins", result.CoinsGained)

		publishEvent(r.Context(), eventBus, event.NewOutcomeEvent(
			event.TypeLootBoxOpened, req.AccountID, string(result.Rarity), result.ItemGranted, result.CoinsGained))

		if result.PetGranted != nil {
			publishEvent(r.Context(), eventBus, event.NewPetGrantEvent(
				req.AccountID, result.PetGranted.Species, string(result.PetGranted.Tier)))
		}

		respondJSON(w, http.StatusOK, result)
	}
}
