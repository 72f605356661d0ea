package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/database"
)

// HandleHealthz reports process liveness. It answers as long as the process
// can serve HTTP at all.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HandleReadyz reports readiness to take traffic. It fails when the database
// is unreachable so load balancers stop routing here.
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logFromRequest(r).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": "database unreachable",
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
