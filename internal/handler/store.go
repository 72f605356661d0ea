package handler

import (
	"net/http"
	"strconv"

	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// HandleGetStore returns the purchasable catalog. ?seasonal=true returns the
// seasonal listing instead of the regular one.
func HandleGetStore(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		seasonal := GetOptionalQueryParam(r, "seasonal", "false") == "true"

		items, err := svc.ListStore(r.Context(), seasonal)
		if err != nil {
			log.Error("Failed to list store", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetStoreFailed)
			return
		}

		log.Info("Store listed", "seasonal", seasonal, "count", len(items))
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

type CreateItemRequest struct {
	Name        string `json:"item_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"item_description" validate:"max=500"`
	Cost        int    `json:"cost" validate:"min=0"`
	Kind        string `json:"kind" validate:"required,max=30"`
	RoleLinkID  string `json:"role_link_id" validate:"max=64"`
	Seasonal    bool   `json:"seasonal"`
}

// HandleCreateItem adds a new item definition to the catalog. Admin surface.
func HandleCreateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req CreateItemRequest
		if !DecodeAndValidateRequest(w, r, &req, "Create item") {
			return
		}

		item, err := svc.CreateItem(r.Context(), &domain.Item{
			Name:        req.Name,
			Description: req.Description,
			Cost:        req.Cost,
			Kind:        domain.ItemKind(req.Kind),
			RoleLinkID:  req.RoleLinkID,
			Seasonal:    req.Seasonal,
		})
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		log.Info("Item created", "item_id", item.ID, "item", item.Name)
		respondJSON(w, http.StatusCreated, item)
	}
}

type UpdateItemRequest struct {
	ID          int    `json:"item_id" validate:"required,min=1"`
	Name        string `json:"item_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"item_description" validate:"max=500"`
	Cost        int    `json:"cost" validate:"min=0"`
	Kind        string `json:"kind" validate:"required,max=30"`
	RoleLinkID  string `json:"role_link_id" validate:"max=64"`
	Seasonal    bool   `json:"seasonal"`
}

// HandleUpdateItem replaces an item definition. Admin surface.
func HandleUpdateItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req UpdateItemRequest
		if !DecodeAndValidateRequest(w, r, &req, "Update item") {
			return
		}

		err := svc.UpdateItem(r.Context(), &domain.Item{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			Cost:        req.Cost,
			Kind:        domain.ItemKind(req.Kind),
			RoleLinkID:  req.RoleLinkID,
			Seasonal:    req.Seasonal,
		})
		if err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		log.Info("Item updated", "item_id", req.ID, "item", req.Name)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item updated"})
	}
}

// HandleDeleteItem removes an item definition by ID. Admin surface.
func HandleDeleteItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		raw, ok := GetQueryParam(w, r, "item_id")
		if !ok {
			return
		}
		itemID, err := strconv.Atoi(raw)
		if err != nil || itemID < 1 {
			respondError(w, http.StatusBadRequest, "Invalid item_id query parameter")
			return
		}

		if err := svc.DeleteItem(r.Context(), itemID); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		log.Info("Item deleted", "item_id", itemID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item deleted"})
	}
}
