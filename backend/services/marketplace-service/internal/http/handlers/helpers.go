package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"chargeshare/backend/services/marketplace-service/internal/http/middleware"
	"chargeshare/backend/services/marketplace-service/internal/repository"
	"chargeshare/backend/services/marketplace-service/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// callerID pulls the session identity set by the middleware; handlers behind
// the session middleware can rely on it being present.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing session")
		return 0, false
	}
	return id, true
}

// writeDomainError maps known service errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound), errors.Is(err, service.ErrChargerNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrOrderFinished),
		errors.Is(err, service.ErrChargerUnavailable),
		errors.Is(err, service.ErrOrderNotCompleted),
		errors.Is(err, service.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotOrderParty):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRatingRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotLive):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
