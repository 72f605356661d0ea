package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ValidationErrorResponse carries per-field validation messages.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent, so an encode
	// failure can only be logged.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors. Internal detail stays in the
// logs; clients get a message they can act on.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgAccountNotFoundError  = "Account not found"
	ErrMsgNotEnoughCoinsError   = "Not enough coins"
	ErrMsgDailyLimitError       = "Daily give limit reached. Try again tomorrow"
	ErrMsgItemNotOwnedError     = "You don't have that item"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgAlreadyEnchantedError = "That item is already enchanted"

	ErrMsgPetNotOwnedError = "You don't own that pet"
	ErrMsgNoActivePetError = "You have no active pet"
	ErrMsgNoFoodOwnedError = "You have no pet food"

	ErrMsgAlreadyCraftingError = "You already have a craft in progress"
	ErrMsgNoActiveJobError     = "You have no craft in progress"
	ErrMsgCraftNotReadyError   = "Your craft is not ready yet"

	ErrMsgInvalidRecipientError = "Invalid recipient"
	ErrMsgNoBoxOwnedError       = "You have no loot boxes"
	ErrMsgExternalEffectError   = "The reward could not be delivered. Try again later"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status code and a
// user-friendly message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrDailyLimitReached):
		return http.StatusBadRequest, ErrMsgDailyLimitError
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedError
	case errors.Is(err, domain.ErrCatalogMissing):
		return http.StatusBadRequest, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrAlreadyEnchanted):
		return http.StatusBadRequest, ErrMsgAlreadyEnchantedError
	case errors.Is(err, domain.ErrPetNotOwned):
		return http.StatusBadRequest, ErrMsgPetNotOwnedError
	case errors.Is(err, domain.ErrNoActivePet):
		return http.StatusBadRequest, ErrMsgNoActivePetError
	case errors.Is(err, domain.ErrNoFoodOwned):
		return http.StatusBadRequest, ErrMsgNoFoodOwnedError
	case errors.Is(err, domain.ErrAlreadyCrafting):
		return http.StatusConflict, ErrMsgAlreadyCraftingError
	case errors.Is(err, domain.ErrNoActiveJob):
		return http.StatusBadRequest, ErrMsgNoActiveJobError
	case errors.Is(err, domain.ErrCraftNotReady):
		return http.StatusConflict, ErrMsgCraftNotReadyError
	case errors.Is(err, domain.ErrInvalidRecipient):
		return http.StatusBadRequest, ErrMsgInvalidRecipientError
	case errors.Is(err, domain.ErrNoBoxOwned):
		return http.StatusBadRequest, ErrMsgNoBoxOwnedError
	case errors.Is(err, domain.ErrExternalEffectFailed):
		return http.StatusBadGateway, ErrMsgExternalEffectError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// Wrapped errors with a domain error deeper in the chain
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Short custom messages (mostly from tests and mocks) pass through
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs the service error and writes the mapped user
// response.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	logFromRequest(r).Error(action+" failed", "error", err, "status", status)
	respondError(w, status, message)
}
