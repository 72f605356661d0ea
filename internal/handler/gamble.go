package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/gamble"
)

type GambleRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
	Stake     int64  `json:"stake" validate:"min=1,max=1000000"`
}

// HandleGamble stakes coins on a single weighted draw.
func HandleGamble(svc gamble.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req GambleRequest
		if !DecodeAndValidateRequest(w, r, &req, "Gamble") {
			return
		}

		result, err := svc.Gamble(r.Context(), req.AccountID, req.Stake)
		if err != nil {
			respondServiceError(w, r, "Gamble", err)
			return
		}

		log.Info("Gamble resolved",
			"account_id", req.AccountID,
			"stake", result.Stake,
			"tier", result.Tier,
			"winnings", result.Winnings)

		publishEvent(r.Context(), eventBus, event.NewOutcomeEvent(
			event.TypeGambleResolved, req.AccountID, string(result.Tier), "", result.Winnings))

		respondJSON(w, http.StatusOK, result)
	}
}
