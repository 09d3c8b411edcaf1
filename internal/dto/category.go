package dto

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=50"`
}

// UpdateCategoryRequest is a partial update: nil means "not supplied", and the
// field keeps its current value. A pointer distinguishes absence from a zero
// value.
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=3,max=50"`
}

// CategoryResponse is the serialized category shape.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
