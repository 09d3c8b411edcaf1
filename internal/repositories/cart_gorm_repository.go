package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// GetByUserIDWithItems loads the user's cart with its lines and their
// products, or (nil, nil) when the user has no cart yet.
func (r *GORMCartRepository) GetByUserIDWithItems(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

// Add inserts a new empty cart.
func (r *GORMCartRepository) Add(cart *models.Cart) error {
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// AddItem inserts a new cart line.
func (r *GORMCartRepository) AddItem(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateItem persists a line's quantity. UnitPrice is written as-is and must
// not be changed by callers; it was frozen when the line was created.
func (r *GORMCartRepository) UpdateItem(item *models.CartItem) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update cart item %d: %w", item.ID, err)
	}
	return nil
}

// RemoveItem deletes a single cart line.
func (r *GORMCartRepository) RemoveItem(itemID uint) error {
	if err := r.db.Delete(&models.CartItem{}, itemID).Error; err != nil {
		return fmt.Errorf("failed to remove cart item %d: %w", itemID, err)
	}
	return nil
}

// ClearItems deletes every line of a cart.
func (r *GORMCartRepository) ClearItems(cartID uint) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart %d: %w", cartID, err)
	}
	return nil
}
