package models

import "time"

// ProductReview is a user's rating of a product. Only the aggregated rating
// summary is exposed through the catalog; reviews themselves have no public
// endpoints.
type ProductReview struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"index"`
	UserID    uint      `json:"user_id"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" gorm:"type:varchar(500)"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSummary is the aggregate shape produced by the batch rating query.
type RatingSummary struct {
	AverageRating float64
	TotalReviews  int64
}
