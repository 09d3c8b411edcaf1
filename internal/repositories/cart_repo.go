package repositories

import "storefront/internal/models"

// CartRepository defines the interface for cart data access.
// GetByUserIDWithItems loads the cart lines and their products; it returns
// (nil, nil) when the user has no cart yet.
type CartRepository interface {
	GetByUserIDWithItems(userID uint) (*models.Cart, error)
	Add(cart *models.Cart) error
	AddItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	RemoveItem(itemID uint) error
	ClearItems(cartID uint) error
}
