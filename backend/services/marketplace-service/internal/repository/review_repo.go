package repository

import (
	"context"
	"database/sql"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// ReviewRepository handles persistence of charger reviews.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository returns repository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	const query = `
		INSERT INTO reviews (id, user_id, charger_id, order_id, rating, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		review.ID,
		review.UserID,
		review.ChargerID,
		review.OrderID,
		review.Rating,
		review.Content,
	).Scan(&review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListByCharger returns all reviews for a charger, newest first.
func (r *ReviewRepository) ListByCharger(ctx context.Context, chargerID string) ([]models.Review, error) {
	const query = `
		SELECT id, user_id, charger_id, order_id, rating, content, created_at
		FROM reviews
		WHERE charger_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, chargerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ChargerID,
			&review.OrderID,
			&review.Rating,
			&review.Content,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

// HasReviewForOrder reports whether the user already reviewed the given order.
func (r *ReviewRepository) HasReviewForOrder(ctx context.Context, userID int64, orderID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE user_id = $1 AND order_id = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, orderID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
