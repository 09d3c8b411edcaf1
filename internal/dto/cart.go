package dto

// AddToCartRequest adds a quantity of one product to the caller's cart.
type AddToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,min=1,max=99"`
}

// UpdateCartItemRequest sets a line's quantity to an absolute value.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=99"`
}

// CartItemResponse is one cart line. YourPrice is the price frozen when the
// item was added; CurrentPrice is the product's price now; Savings is the
// per-unit drift between them.
type CartItemResponse struct {
	ID           uint    `json:"id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	YourPrice    float64 `json:"your_price"`
	CurrentPrice float64 `json:"current_price"`
	Savings      float64 `json:"savings"`
	Subtotal     float64 `json:"subtotal"`
}

// CartResponse is the caller's cart. An absent cart serializes as the zero
// value: no items, zero totals.
type CartResponse struct {
	ID           uint               `json:"id"`
	Items        []CartItemResponse `json:"items"`
	TotalAmount  float64            `json:"total_amount"`
	TotalSavings float64            `json:"total_savings"`
}
