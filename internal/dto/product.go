package dto

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=50"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0,lt=100000"`
	CategoryID  uint    `json:"category_id" validate:"required,gt=0"`
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0,lt=100000"`
	CategoryID  *uint    `json:"category_id" validate:"omitempty,gt=0"`
}

// ProductResponse is the serialized product shape, including the aggregated
// rating fields filled from the batch rating query.
type ProductResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	CategoryID    uint    `json:"category_id"`
	CategoryName  string  `json:"category_name,omitempty"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}
