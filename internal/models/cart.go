package models

import "time"

// Cart is a user's single active shopping cart. It is created lazily on the
// first add-to-cart and emptied by checkout.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalAmount is the sum of the line subtotals. Derived, never stored.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}

// FindItem returns the line for a cart item id, or nil.
func (c *Cart) FindItem(itemID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByProduct returns the line referencing a product, or nil.
func (c *Cart) FindItemByProduct(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// CartItem is one cart line. UnitPrice is frozen at the moment the item is
// added and never follows later product price changes; only Quantity mutates.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cart_id" gorm:"index"`
	ProductID uint      `json:"product_id"`
	Product   *Product  `json:"-" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" validate:"required,min=1,max=99"`
	UnitPrice float64   `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is quantity times the frozen unit price.
func (i *CartItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}
