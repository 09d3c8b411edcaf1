package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{db: db}
}

// Add inserts a new review.
func (r *GORMReviewRepository) Add(review *models.ProductReview) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetRatingSummaryBatch aggregates average rating and review count for the
// given products in one GROUP BY query. Products without reviews are simply
// absent from the map.
func (r *GORMReviewRepository) GetRatingSummaryBatch(productIDs []uint) (map[uint]models.RatingSummary, error) {
	summaries := make(map[uint]models.RatingSummary, len(productIDs))
	if len(productIDs) == 0 {
		return summaries, nil
	}

	var rows []struct {
		ProductID     uint
		AverageRating float64
		TotalReviews  int64
	}
	err := r.db.Model(&models.ProductReview{}).
		Select("product_id, AVG(rating) AS average_rating, COUNT(*) AS total_reviews").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	for _, row := range rows {
		summaries[row.ProductID] = models.RatingSummary{
			AverageRating: row.AverageRating,
			TotalReviews:  row.TotalReviews,
		}
	}
	return summaries, nil
}
