package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
)

// HandleGetAccount returns an account's balances and skill levels. The
// account is created on first reference, so this never 404s on a well-formed
// ID.
func HandleGetAccount(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(w, r, "account_id")
		if !ok {
			return
		}

		account, err := svc.GetAccount(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get account", err)
			return
		}

		respondJSON(w, http.StatusOK, account)
	}
}

// InventoryItemResponse is one inventory stack joined with its catalog entry.
type InventoryItemResponse struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// HandleGetInventory returns the account's inventory with item names resolved
// against the catalog.
func HandleGetInventory(svc ledger.Service, catalogSvc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		accountID, ok := GetQueryParam(w, r, "account_id")
		if !ok {
			return
		}

		entries, err := svc.GetInventory(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}

		items := make([]InventoryItemResponse, 0, len(entries))
		for _, entry := range entries {
			item, err := catalogSvc.GetItemByID(r.Context(), entry.ItemID)
			if err != nil {
				// A stack referencing a deleted catalog row is skipped, not fatal.
				log.Warn("Inventory references unknown item", "item_id", entry.ItemID, "error", err)
				continue
			}
			items = append(items, InventoryItemResponse{ItemName: item.Name, Quantity: entry.Quantity})
		}

		log.Info("Inventory retrieved", "account_id", accountID, "stacks", len(items))
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

type AdjustCurrencyRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Currency  string `json:"currency" validate:"required,currency"`
	Delta     int64  `json:"delta" validate:"required"`
}

type AdjustCurrencyResponse struct {
	Currency   string `json:"currency"`
	NewBalance int64  `json:"new_balance"`
}

// HandleAdjustCurrency applies a signed delta to one balance. Admin surface;
// the public routes never mint currency directly.
func HandleAdjustCurrency(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req AdjustCurrencyRequest
		if !DecodeAndValidateRequest(w, r, &req, "Adjust currency") {
			return
		}

		newBalance, err := svc.AdjustCurrency(r.Context(), req.AccountID, domain.Currency(req.Currency), req.Delta)
		if err != nil {
			respondServiceError(w, r, "Adjust currency", err)
			return
		}

		log.Info("Balance adjusted",
			"account_id", req.AccountID,
			"currency", req.Currency,
			"delta", req.Delta,
			"new_balance", newBalance)

		respondJSON(w, http.StatusOK, AdjustCurrencyResponse{Currency: req.Currency, NewBalance: newBalance})
	}
}
