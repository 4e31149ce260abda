package stats

import (
	"testing"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

func TestSummarizeReviews(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}

	summary := SummarizeReviews(reviews)
	if summary.TotalReviews != 4 {
		t.Errorf("total = %d, want 4", summary.TotalReviews)
	}
	if summary.AverageRating != 4.3 { // 17/4 = 4.25, rounded half up to one decimal
		t.Errorf("average = %v, want 4.3", summary.AverageRating)
	}
	if summary.Distribution[5] != 2 || summary.Distribution[4] != 1 || summary.Distribution[3] != 1 {
		t.Errorf("distribution = %v", summary.Distribution)
	}
	if summary.Distribution[1] != 0 || summary.Distribution[2] != 0 {
		t.Errorf("expected zero entries for unused stars, got %v", summary.Distribution)
	}
}

func TestSummarizeReviewsEmpty(t *testing.T) {
	summary := SummarizeReviews(nil)
	if summary.TotalReviews != 0 || summary.AverageRating != 0 {
		t.Errorf("summary of no reviews = %+v", summary)
	}
	if len(summary.Distribution) != 5 {
		t.Errorf("distribution should still carry all five stars: %v", summary.Distribution)
	}
}
