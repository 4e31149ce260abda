package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/service"
)

// OrdersHandler serves booking and the order lifecycle.
type OrdersHandler struct {
	orders *service.OrderService
	logger *zap.Logger
}

// NewOrdersHandler builds handler set.
func NewOrdersHandler(orders *service.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{orders: orders, logger: logger}
}

type bookRequest struct {
	ChargerID      string  `json:"charger_id"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	StartLevelPct  float64 `json:"start_level_pct"`
	TargetLevelPct float64 `json:"target_level_pct"`
	CapacityKWh    float64 `json:"capacity_kwh"`
}

// Book handles POST /orders.
func (h *OrdersHandler) Book(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ChargerID == "" {
		writeError(w, http.StatusBadRequest, "charger_id is required")
		return
	}

	order, err := h.orders.Book(r.Context(), service.BookInput{
		UserID:         caller,
		Lat:            req.Lat,
		Lng:            req.Lng,
		ChargerID:      req.ChargerID,
		StartLevelPct:  req.StartLevelPct,
		TargetLevelPct: req.TargetLevelPct,
		CapacityKWh:    req.CapacityKWh,
	})
	if err != nil {
		h.logger.Error("booking failed", zap.String("charger_id", req.ChargerID), zap.Error(err))
		writeDomainError(w, err, "failed to book charger")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// Complete handles POST /orders/{id}/complete.
func (h *OrdersHandler) Complete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Complete(r.Context(), r.PathValue("id"), caller)
	if err != nil {
		writeDomainError(w, err, "failed to complete order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Cancel handles POST /orders/{id}/cancel.
func (h *OrdersHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.Cancel(r.Context(), r.PathValue("id"), caller)
	if err != nil {
		writeDomainError(w, err, "failed to cancel order")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// History handles GET /orders/me.
func (h *OrdersHandler) History(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.HistoryForUser(r.Context(), caller, 100)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
	})
}

// Live handles GET /orders/{id}/live, a one-shot snapshot for clients that
// poll instead of holding the websocket open.
func (h *OrdersHandler) Live(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerID(w, r); !ok {
		return
	}

	snap, err := h.orders.LiveSnapshot(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "failed to project session")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
