package handler

import (
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
	"github.com/dotworks/PixieBot_Go/internal/event"
)

type ChatMessageRequest struct {
	AccountID     string `json:"account_id" validate:"required,max=64"`
	MessageLength int    `json:"message_length" validate:"min=0,max=100000"`
}

// HandleChatMessage records one chat message for passive accrual. Messages
// under the length floor or inside the cooldown award nothing; that is still
// a 200, not an error.
func HandleChatMessage(svc accrual.Service, eventBus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logFromRequest(r)

		var req ChatMessageRequest
		if !DecodeAndValidateRequest(w, r, &req, "Chat message") {
			return
		}

		reward, err := svc.TryAwardChatReward(r.Context(), req.AccountID, req.MessageLength)
		if err != nil {
			log.Error("Chat reward failed", "account_id", req.AccountID, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgChatEventFailed)
			return
		}

		if reward.Awarded {
			publishEvent(r.Context(), eventBus, event.NewAccrualEvent(
				event.TypeChatReward, req.AccountID, reward.Coins))
		}

		respondJSON(w, http.StatusOK, reward)
	}
}

type VoicePresenceRequest struct {
	AccountID    string `json:"account_id" validate:"required,max=64"`
	Participants int    `json:"participants" validate:"min=0,max=1000"`
	Streaming    bool   `json:"streaming"`
}

// HandleVoiceStart begins voice tracking for an account.
func HandleVoiceStart(tracker *accrual.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoicePresenceRequest
		if !DecodeAndValidateRequest(w, r, &req, "Voice start") {
			return
		}

		tracker.Start(req.AccountID, accrual.VoiceState{
			Participants: req.Participants,
			Streaming:    req.Streaming,
		})

		logFromRequest(r).Info("Voice tracking started",
			"account_id", req.AccountID,
			"participants", req.Participants,
			"streaming", req.Streaming)

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Voice tracking started"})
	}
}

// HandleVoiceUpdate refreshes the observed voice state of a tracked account.
// Updates for idle accounts are ignored.
func HandleVoiceUpdate(tracker *accrual.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoicePresenceRequest
		if !DecodeAndValidateRequest(w, r, &req, "Voice update") {
			return
		}

		tracker.Update(req.AccountID, accrual.VoiceState{
			Participants: req.Participants,
			Streaming:    req.Streaming,
		})

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Voice state updated"})
	}
}

type VoiceStopRequest struct {
	AccountID string `json:"account_id" validate:"required,max=64"`
}

// HandleVoiceStop ends voice tracking. Idempotent.
func HandleVoiceStop(tracker *accrual.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VoiceStopRequest
		if !DecodeAndValidateRequest(w, r, &req, "Voice stop") {
			return
		}

		tracker.Stop(req.AccountID)

		logFromRequest(r).Info("Voice tracking stopped", "account_id", req.AccountID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Voice tracking stopped"})
	}
}
