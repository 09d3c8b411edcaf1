package repositories

import "storefront/internal/models"

// ReviewRepository exposes product review data. GetRatingSummaryBatch
// aggregates ratings for many products in a single query so listings avoid
// an N+1 pattern.
type ReviewRepository interface {
	Add(review *models.ProductReview) error
	GetRatingSummaryBatch(productIDs []uint) (map[uint]models.RatingSummary, error)
}
