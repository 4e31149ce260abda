package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/token"
)

type sessionRequest struct {
	UserID int64       `json:"user_id"`
	Role   models.Role `json:"role"`
}

// NewSessionHandler returns the POST /session handler: the role toggle. The
// client picks who it acts as (driver or owner) and receives a session token;
// there are no credentials to check.
func NewSessionHandler(tokens *token.Service, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.UserID == 0 {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}
		if !req.Role.Valid() {
			writeError(w, http.StatusBadRequest, "role must be user or owner")
			return
		}

		signed, err := tokens.Generate(req.UserID, req.Role)
		if err != nil {
			logger.Error("failed to issue session token", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"token":   signed,
			"user_id": req.UserID,
			"role":    req.Role,
		})
	}
}
