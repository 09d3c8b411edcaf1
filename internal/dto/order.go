package dto

import "time"

// OrderItemResponse is one frozen order line.
type OrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// OrderResponse is the serialized order shape.
type OrderResponse struct {
	ID          uint                `json:"id"`
	OrderNumber string              `json:"order_number"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	OrderDate   time.Time           `json:"order_date"`
	Items       []OrderItemResponse `json:"items"`
}
