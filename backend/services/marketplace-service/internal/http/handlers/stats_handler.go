package handlers

import (
	"net/http"
	"strconv"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/http/middleware"
	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/service"
)

// StatsHandler serves the statistics and earnings screens.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler builds handler set.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Me handles GET /stats/me.
func (h *StatsHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	days := intQuery(r, "days")
	weeks := intQuery(r, "weeks")

	payload, err := h.stats.ForUser(r.Context(), caller, days, weeks, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// Earnings handles GET /owners/me/earnings. Only callers holding the owner
// role see the earnings dashboard.
func (h *StatsHandler) Earnings(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}
	if role, ok := middleware.RoleFromContext(r.Context()); !ok || role != models.RoleOwner {
		writeError(w, http.StatusForbidden, "owner role required")
		return
	}

	payload, err := h.stats.ForOwner(r.Context(), caller, intQuery(r, "days"), time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute earnings")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func intQuery(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
