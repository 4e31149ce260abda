package handlers

import (
	"net/http"
	"strconv"

	"chargeshare/backend/services/marketplace-service/internal/charging"
	"chargeshare/backend/services/marketplace-service/internal/service"
)

// EstimateHandler prices a prospective charge on a listing before booking.
type EstimateHandler struct {
	chargers *service.ChargerService
}

// NewEstimateHandler builds handler.
func NewEstimateHandler(chargers *service.ChargerService) *EstimateHandler {
	return &EstimateHandler{chargers: chargers}
}

// Estimate handles GET /chargers/{id}/estimate. Mode "target" (default) prices
// from=..&to=.. battery percentages; mode "duration" prices minutes=.. of
// charging from the given level.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := coordinates(w, r)
	if !ok {
		return
	}

	charger, err := h.chargers.Find(r.Context(), lat, lng, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "failed to load charger")
		return
	}

	q := r.URL.Query()
	capacity := floatQuery(q.Get("capacity_kwh"))
	from := floatQuery(q.Get("from"))

	var est charging.Estimate
	switch q.Get("mode") {
	case "", "target":
		to := floatQuery(q.Get("to"))
		if to == 0 {
			to = 100
		}
		est = charging.EstimateByTarget(charger.PricePerKWh, charger.PowerKW, capacity, from, to)
	case "duration":
		minutes, err := strconv.Atoi(q.Get("minutes"))
		if err != nil || minutes <= 0 {
			writeError(w, http.StatusBadRequest, "minutes is required for duration mode")
			return
		}
		est = charging.EstimateByDuration(charger.PricePerKWh, charger.PowerKW, capacity, from, minutes)
	default:
		writeError(w, http.StatusBadRequest, "mode must be target or duration")
		return
	}

	writeJSON(w, http.StatusOK, est)
}

func floatQuery(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
