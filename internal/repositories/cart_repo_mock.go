package repositories

import (
	"fmt"
	"sort"
	"sync"

	"storefront/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository. It
// resolves each line's Product through the product repository, mirroring the
// GORM preload.
type MockCartRepository struct {
	mu         sync.RWMutex
	carts      map[uint]models.Cart
	items      map[uint]models.CartItem
	nextCartID uint
	nextItemID uint
	products   *MockProductRepository
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		carts:      make(map[uint]models.Cart),
		items:      make(map[uint]models.CartItem),
		nextCartID: 1,
		nextItemID: 1,
		products:   products,
	}
}

// GetByUserIDWithItems returns the user's cart with lines and products
// attached, or (nil, nil) when the user has no cart yet.
func (r *MockCartRepository) GetByUserIDWithItems(userID uint) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.carts {
		if c.UserID != userID {
			continue
		}
		cart := c
		cart.Items = r.itemsOf(cart.ID)
		return &cart, nil
	}
	return nil, nil
}

// Add stores a new empty cart.
func (r *MockCartRepository) Add(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart.ID = r.nextCartID
	r.nextCartID++
	stored := *cart
	stored.Items = nil
	r.carts[cart.ID] = stored
	return nil
}

// AddItem stores a new cart line.
func (r *MockCartRepository) AddItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextItemID
	r.nextItemID++
	stored := *item
	stored.Product = nil
	r.items[item.ID] = stored
	return nil
}

// UpdateItem overwrites an existing cart line.
func (r *MockCartRepository) UpdateItem(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("cart item %d not found for update", item.ID)
	}
	stored := *item
	stored.Product = nil
	r.items[item.ID] = stored
	return nil
}

// RemoveItem deletes a cart line.
func (r *MockCartRepository) RemoveItem(itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, itemID)
	return nil
}

// ClearItems deletes every line of a cart.
func (r *MockCartRepository) ClearItems(cartID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.CartID == cartID {
			delete(r.items, id)
		}
	}
	return nil
}

// itemsOf collects a cart's lines sorted by id. Callers hold the lock.
func (r *MockCartRepository) itemsOf(cartID uint) []models.CartItem {
	var lines []models.CartItem
	for _, item := range r.items {
		if item.CartID != cartID {
			continue
		}
		line := item
		if r.products != nil {
			if product, _ := r.products.GetByID(line.ProductID); product != nil {
				line.Product = product
			}
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })
	return lines
}
