package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/forge"
)

type StartCraftRequest struct {
	AccountID       string `json:"account_id" validate:"required,max=64"`
	Recipe          string `json:"recipe" validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=1,max=1440"`
}

// HandleStartCraft begins a craft job for the account.
func HandleStartCraft(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req StartCraftRequest
		if !DecodeAndValidateRequest(w, r, &req, "Start craft") {
			return
		}

		result, err := svc.StartCraft(r.Context(), req.AccountID, req.Recipe, req.DurationMinutes)
		if err != nil {
			respondServiceError(w, r, "Start craft", err)
			return
		}

		log.Info("Craft started",
			"account_id", req.AccountID,
			"recipe", result.Recipe,
			"duration_minutes", result.CommittedDuration,
			"job_id", result.JobID)

		respondJSON(w, http.StatusCreated, result)
	}
}

type CollectCraftRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
}

// HandleCollectCraft collects a finished craft job and grades its output.
func HandleCollectCraft(svc forge.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req CollectCraftRequest
		if !DecodeAndValidateRequest(w, r, &req, "Collect craft") {
			return
		}

		result, err := svc.CollectCraft(r.Context(), req.AccountID)
		if err != nil {
			respondServiceError(w, r, "Collect craft", err)
			return
		}

		log.Info("Craft collected",
			"account_id", req.AccountID,
			"item", result.ItemName,
			"quality", result.Quality,
			"xp", result.XPAwarded)

		publishEvent(r.Context(), eventBus, event.NewOutcomeEvent(
			event.TypeCraftCollected, req.AccountID, string(result.Quality), result.ItemName, int64(result.ItemValue)))

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleCraftStatus reports the account's pending craft job.
func HandleCraftStatus(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := GetQueryParam(w, r, "account_id")
		if !ok {
			return
		}

		status, err := svc.GetStatus(r.Context(), accountID)
		if err != nil {
			respondServiceError(w, r, "Craft status", err)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}

// HandleGetRecipes returns the forgeable recipe list.
func HandleGetRecipes(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.ListRecipes()})
	}
}
