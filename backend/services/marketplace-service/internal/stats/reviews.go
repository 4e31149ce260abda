package stats

import (
	"math"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// ReviewSummary aggregates the reviews of one charger.
type ReviewSummary struct {
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	Distribution  map[int]int `json:"distribution"`
}

// SummarizeReviews computes the average rating (1 decimal) and the 1-5 star
// distribution. Ratings outside 1-5 are counted in the total but not the
// distribution.
func SummarizeReviews(reviews []models.Review) ReviewSummary {
	summary := ReviewSummary{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return summary
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			summary.Distribution[review.Rating]++
		}
	}
	summary.TotalReviews = len(reviews)
	summary.AverageRating = math.Round(float64(total)/float64(len(reviews))*10) / 10
	return summary
}
