package models

import "time"

// OrderStatus is the order state machine: pending is the only state reachable
// from checkout, cancelled is terminal.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a checked-out cart. TotalAmount is a snapshot of the cart total at
// creation time; it is never recomputed, price drift afterwards is intentional.
type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"index"`
	OrderNumber string      `json:"order_number" gorm:"uniqueIndex;type:varchar(64)"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20)"`
	TotalAmount float64     `json:"total_amount"`
	OrderDate   time.Time   `json:"order_date"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OrderItem is one order line, immutable after creation. UnitPrice carries
// the cart line's frozen price forward.
type OrderItem struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"order_id" gorm:"index"`
	ProductID uint     `json:"product_id"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity"`
	UnitPrice float64  `json:"unit_price"`
}

// Subtotal is quantity times the frozen unit price.
func (i *OrderItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
