package repositories

import (
	"fmt"
	"sort"
	"sync"

	"storefront/internal/models"
	"storefront/internal/results"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	mu         sync.RWMutex
	orders     map[uint]models.Order
	nextID     uint
	nextItemID uint
	products   *MockProductRepository
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:     make(map[uint]models.Order),
		nextID:     1,
		nextItemID: 1,
		products:   products,
	}
}

// Add stores a new order with its lines.
func (r *MockOrderRepository) Add(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	for i := range order.Items {
		order.Items[i].ID = r.nextItemID
		order.Items[i].OrderID = order.ID
		r.nextItemID++
	}

	stored := *order
	stored.Items = make([]models.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)
	r.orders[order.ID] = stored
	return nil
}

// GetByIDWithItems returns an order with products attached to its lines, or
// (nil, nil) if absent.
func (r *MockOrderRepository) GetByIDWithItems(id uint) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order := r.withProducts(stored)
	return &order, nil
}

// GetByUserIDPaged returns one page of the user's orders, newest first.
func (r *MockOrderRepository) GetByUserIDPaged(userID uint, p results.PaginationParams) ([]models.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			all = append(all, r.withProducts(o))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	return pageSlice(all, p), int64(len(all)), nil
}

// UpdateStatus changes an order's status.
func (r *MockOrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %d not found for status update", id)
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

// withProducts copies an order, resolving each line's product. Callers hold
// the lock.
func (r *MockOrderRepository) withProducts(stored models.Order) models.Order {
	order := stored
	order.Items = make([]models.OrderItem, len(stored.Items))
	copy(order.Items, stored.Items)
	if r.products != nil {
		for i := range order.Items {
			if product, _ := r.products.GetByID(order.Items[i].ProductID); product != nil {
				order.Items[i].Product = product
			}
		}
	}
	return order
}
