package handlers

import (
	"net/http"
	"strconv"

	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/service"
)

// ChargersHandler serves the map listing surface.
type ChargersHandler struct {
	chargers *service.ChargerService
	reviews  *service.ReviewService
}

// NewChargersHandler builds handler set.
func NewChargersHandler(chargers *service.ChargerService, reviews *service.ReviewService) *ChargersHandler {
	return &ChargersHandler{chargers: chargers, reviews: reviews}
}

// List handles GET /chargers.
func (h *ChargersHandler) List(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := coordinates(w, r)
	if !ok {
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	chargers, err := h.chargers.Search(r.Context(), lat, lng, filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load chargers")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"chargers": chargers,
	})
}

// Detail handles GET /chargers/{id}.
func (h *ChargersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := coordinates(w, r)
	if !ok {
		return
	}

	charger, err := h.chargers.Find(r.Context(), lat, lng, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "failed to load charger")
		return
	}
	writeJSON(w, http.StatusOK, charger)
}

// Reviews handles GET /chargers/{id}/reviews.
func (h *ChargersHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, summary, err := h.reviews.ForCharger(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"summary": summary,
	})
}

func coordinates(w http.ResponseWriter, r *http.Request) (float64, float64, bool) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, http.StatusBadRequest, "lat and lng are required")
		return 0, 0, false
	}
	return lat, lng, true
}

func parseFilters(r *http.Request) (models.SearchFilters, error) {
	var filters models.SearchFilters
	q := r.URL.Query()

	if t := q.Get("type"); t != "" {
		filters.Type = models.ChargerType(t)
	}
	if v := q.Get("min_price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.MinPrice = parsed
	}
	if v := q.Get("max_price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filters, err
		}
		filters.MaxPrice = parsed
	}
	if v := q.Get("available"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return filters, err
		}
		filters.OnlyAvailable = parsed
	}
	return filters, nil
}
