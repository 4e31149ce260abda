package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chargeshare/backend/services/marketplace-service/internal/models"
	"chargeshare/backend/services/marketplace-service/internal/repository"
	"chargeshare/backend/services/marketplace-service/internal/stats"
)

// ReviewService guards review creation: only the driver of a completed order
// may review it, once.
type ReviewService struct {
	reviews *repository.ReviewRepository
	orders  *repository.OrderRepository
	logger  *zap.Logger
}

// NewReviewService builds service.
func NewReviewService(reviews *repository.ReviewRepository, orders *repository.OrderRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders, logger: logger}
}

// CreateReviewInput describes a review submission.
type CreateReviewInput struct {
	UserID  int64
	OrderID string
	Rating  int
	Content string
}

// Create validates and stores a review for the order's charger.
func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrRatingRange
	}

	order, err := s.orders.Get(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != input.UserID {
		return nil, ErrNotOrderParty
	}
	if order.Status != models.OrderStatusCompleted {
		return nil, ErrOrderNotCompleted
	}

	reviewed, err := s.reviews.HasReviewForOrder(ctx, input.UserID, input.OrderID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		ChargerID: order.ChargerID,
		OrderID:   input.OrderID,
		Rating:    input.Rating,
		Content:   input.Content,
	}
	review, err = s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.logger.Info("review created",
		zap.String("review_id", review.ID),
		zap.String("charger_id", review.ChargerID),
		zap.Int("rating", review.Rating),
	)
	return review, nil
}

// ForCharger returns a charger's reviews with their summary.
func (s *ReviewService) ForCharger(ctx context.Context, chargerID string) ([]models.Review, stats.ReviewSummary, error) {
	reviews, err := s.reviews.ListByCharger(ctx, chargerID)
	if err != nil {
		return nil, stats.ReviewSummary{}, err
	}
	return reviews, stats.SummarizeReviews(reviews), nil
}
