package handlers

import (
	"encoding/json"
	"net/http"

	"chargeshare/backend/services/marketplace-service/internal/service"
)

type createReviewRequest struct {
	OrderID string `json:"order_id"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// NewCreateReviewHandler returns the POST /reviews handler.
func NewCreateReviewHandler(reviews *service.ReviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}

		var req createReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		if req.OrderID == "" {
			writeError(w, http.StatusBadRequest, "order_id is required")
			return
		}

		review, err := reviews.Create(r.Context(), service.CreateReviewInput{
			UserID:  caller,
			OrderID: req.OrderID,
			Rating:  req.Rating,
			Content: req.Content,
		})
		if err != nil {
			writeDomainError(w, err, "failed to create review")
			return
		}
		writeJSON(w, http.StatusCreated, review)
	}
}
