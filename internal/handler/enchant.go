package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/enchant"
	"github.com/dotworks/PixieBot_Go/internal/event"
)

type EnchantRequest struct {
	AccountID   string `json:"account_id" validate:"required,max=64"`
	ItemName    string `json:"item_name" validate:"required,max=100"`
	Enchantment string `json:"enchantment" validate:"max=100"`
}

// HandleEnchant applies an enchantment to an owned item. An empty enchantment
// name rolls a random one.
func HandleEnchant(svc enchant.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req EnchantRequest
		if !DecodeAndValidateRequest(w, r, &req, "Enchant item") {
			return
		}

		result, err := svc.Enchant(r.Context(), req.AccountID, req.ItemName, req.Enchantment)
		if err != nil {
			respondServiceError(w, r, "Enchant item", err)
			return
		}

		log.Info("Item enchanted",
			"account_id", req.AccountID,
			"item", result.ItemName,
			"enchantment", result.Enchantment,
			"quality", result.Quality)

		publishEvent(r.Context(), eventBus, event.NewOutcomeEvent(
			event.TypeItemEnchanted, req.AccountID, string(result.Quality), result.ItemName, int64(result.ItemValue)))

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetEnchantments returns the known enchantment list.
func HandleGetEnchantments(svc enchant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.ListEnchantments()})
	}
}
