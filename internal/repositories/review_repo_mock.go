package repositories

import (
	"sync"

	"storefront/internal/models"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository.
type MockReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.ProductReview
	nextID  uint
}

// NewMockReviewRepository creates a new instance of MockReviewRepository.
func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{nextID: 1}
}

// Add stores a new review.
func (r *MockReviewRepository) Add(review *models.ProductReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, *review)
	return nil
}

// GetRatingSummaryBatch aggregates ratings per product for the given ids.
func (r *MockReviewRepository) GetRatingSummaryBatch(productIDs []uint) (map[uint]models.RatingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[uint]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	sums := make(map[uint]int)
	counts := make(map[uint]int64)
	for _, review := range r.reviews {
		if wanted[review.ProductID] {
			sums[review.ProductID] += review.Rating
			counts[review.ProductID]++
		}
	}

	summaries := make(map[uint]models.RatingSummary, len(counts))
	for id, count := range counts {
		summaries[id] = models.RatingSummary{
			AverageRating: float64(sums[id]) / float64(count),
			TotalReviews:  count,
		}
	}
	return summaries, nil
}
