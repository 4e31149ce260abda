package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/redisstore"
)

// FavoritesHandler serves the bookmark surface on top of the key-value store.
type FavoritesHandler struct {
	store  *redisstore.FavoritesStore
	logger *zap.Logger
}

// NewFavoritesHandler builds handler set.
func NewFavoritesHandler(store *redisstore.FavoritesStore, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{store: store, logger: logger}
}

type addFavoriteRequest struct {
	ChargerName    string `json:"charger_name"`
	ChargerAddress string `json:"charger_address"`
}

// Add handles PUT /favorites/{chargerId}.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	fav := models.Favorite{
		ChargerID:      r.PathValue("chargerId"),
		ChargerName:    req.ChargerName,
		ChargerAddress: req.ChargerAddress,
		CreatedAt:      time.Now().UTC(),
	}

	existed, err := h.store.Has(r.Context(), caller, fav.ChargerID)
	if err != nil {
		h.logger.Error("failed to check favorite", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save favorite")
		return
	}
	if err := h.store.Add(r.Context(), caller, fav); err != nil {
		h.logger.Error("failed to save favorite", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save favorite")
		return
	}

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	writeJSON(w, status, fav)
}

// Remove handles DELETE /favorites/{chargerId}.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.store.Remove(r.Context(), caller, r.PathValue("chargerId")); err != nil {
		h.logger.Error("failed to remove favorite", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to remove favorite")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// List handles GET /favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	favorites, err := h.store.List(r.Context(), caller)
	if err != nil {
		h.logger.Error("failed to list favorites", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": favorites,
	})
}
