package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dotworks/PixieBot_Go/internal/logger"
)

func logFromRequest(r *http.Request) *slog.Logger {
	return logger.FromContext(r.Context())
}

// DecodeAndValidateRequest decodes the JSON body into req and validates it.
// On failure it writes the error response and returns false; the handler
// should return immediately.
func DecodeAndValidateRequest(w http.ResponseWriter, r *http.Request, req interface{}, action string) bool {
	log := logFromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error("Failed to decode request", "action", action, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Request validation failed", "action", action, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}

	return true
}

// GetQueryParam returns the named query parameter, writing a 400 response and
// returning false when it is absent.
func GetQueryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, name))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the named query parameter or the fallback.
func GetOptionalQueryParam(r *http.Request, name, fallback string) string {
	if value := r.URL.Query().Get(name); value != "" {
		return value
	}
	return fallback
}
