package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/pet"
)

// HandleListPets returns every pet the account owns.
func HandleListPets(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(w, r, "account_id")
		if !ok {
			return
		}

		pets, err := svc.ListPets(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "List pets", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: pets})
	}
}

// HandleGetActivePet returns the account's active pet.
func HandleGetActivePet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(w, r, "account_id")
		if !ok {
			return
		}

		active, err := svc.GetActivePet(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Get active pet", err)
			return
		}

		respondJSON(w, http.StatusOK, active)
	}
}

type SetActivePetRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	PetID     int    `json:"pet_id" validate:"required,min=1"`
}

// HandleSetActivePet switches the account's active pet.
func HandleSetActivePet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req SetActivePetRequest
		if !DecodeAndValidateRequest(w, r, &req, "Set active pet") {
			return
		}

		active, err := svc.SetActivePet(r.Context(), req.AccountID, req.PetID)
		if err != nil {
			respondServiceError(w, r, "Set active pet", err)
			return
		}

		log.Info("Active pet set", "account_id", req.AccountID, "pet_id", active.ID, "species", active.Species)
		respondJSON(w, http.StatusOK, active)
	}
}

type FeedPetRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
}

// HandleFeedPet consumes one pet food to grow the active pet.
func HandleFeedPet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req FeedPetRequest
		if !DecodeAndValidateRequest(w, r, &req, "Feed pet") {
			return
		}

		result, err := svc.FeedActivePet(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "Feed pet", err)
			return
		}

		log.Info("Pet fed",
			"account_id", req.AccountID,
			"pet_id", result.PetID,
			"gain", result.Gain,
			"new_level", result.NewLevel)

		respondJSON(w, http.StatusOK, result)
	}
}

type RenamePetRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	PetID     int    `json:"pet_id" validate:"required,min=1"`
	Name      string `json:"pet_name" validate:"required,max=50,excludesall=\x00\n\r\t"`
}

// HandleRenamePet consumes one rename scroll to rename an owned pet.
func HandleRenamePet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req RenamePetRequest
		if !DecodeAndValidateRequest(w, r, &req, "Rename pet") {
			return
		}

		if err := svc.RenamePet(r.Context(), req.AccountID, req.PetID, req.Name); err != nil {
			respondServiceError(w, r, "Rename pet", err)
			return
		}

		log.Info("Pet renamed", "account_id", req.AccountID, "pet_id", req.PetID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet renamed"})
	}
}

type RemovePetRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	PetID     int    `json:"pet_id" validate:"required,min=1"`
}

// HandleRemovePet releases an owned pet.
func HandleRemovePet(svc pet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req RemovePetRequest
		if !DecodeAndValidateRequest(w, r, &req, "Remove pet") {
			return
		}

		if err := svc.RemovePet(r.Context(), req.AccountID, req.PetID); err != nil {
			respondServiceError(w, r, "Remove pet", err)
			return
		}

		log.Info("Pet removed", "account_id", req.AccountID, "pet_id", req.PetID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Pet removed"})
	}
}

type OpenPetBoxRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	BoxName   string `json:"box_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleOpenPetBox consumes one pet box and grants a pet of the box's tier.
func HandleOpenPetBox(svc pet.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req OpenPetBoxRequest
		if !DecodeAndValidateRequest(w, r, &req, "Open pet box") {
			return
		}

		granted, err := svc.OpenPetBox(r.Context(), req.AccountID, req.BoxName)
		if err != nil {
			respondServiceError(w, r, "Open pet box", err)
			return
		}

		log.Info("Pet box opened",
			"account_id", req.AccountID,
			"box", req.BoxName,
			"pet_id", granted.ID,
			"species", granted.Species,
			"tier", granted.Tier)

		publishEvent(r.Context(), eventBus, event.NewPetGrantEvent(
			req.AccountID, granted.Species, string(granted.Tier)))

		respondJSON(w, http.StatusOK, granted)
	}
}

type GrantPetRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Tier      string `json:"tier" validate:"required,pettier"`
}

// HandleGrantPet rolls a pet from the given tier pool. Admin surface; normal
// grants come from loot boxes.
func HandleGrantPet(svc pet.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req GrantPetRequest
		if !DecodeAndValidateRequest(w, r, &req, "Grant pet") {
			return
		}

		granted, err := svc.GrantPet(r.Context(), req.AccountID, domain.PetTier(req.Tier))
		if err != nil {
			respondServiceError(w, r, "Grant pet", err)
			return
		}

		log.Info("Pet granted",
			"account_id", req.AccountID,
			"pet_id", granted.ID,
			"species", granted.Species,
			"tier", granted.Tier)

		publishEvent(r.Context(), eventBus, event.NewPetGrantEvent(
			req.AccountID, granted.Species, string(granted.Tier)))

		respondJSON(w, http.StatusCreated, granted)
	}
}
