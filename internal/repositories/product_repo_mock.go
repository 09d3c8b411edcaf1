package repositories

import (
	"sort"
	"sync"

	"storefront/internal/models"
	"storefront/internal/results"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[uint]models.Product
	nextID   uint
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAllPaged returns one page of products ordered by id.
func (r *MockProductRepository) GetAllPaged(p results.PaginationParams) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, prod := range r.products {
		all = append(all, prod)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return pageSlice(all, p), int64(len(all)), nil
}

// GetByID returns a product by its id, or (nil, nil) if absent.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Add stores a new product, enforcing name uniqueness like the real index.
func (r *MockProductRepository) Add(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == product.Name {
			return ErrDuplicateName
		}
	}
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update overwrites an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Name == product.Name && p.ID != product.ID {
			return ErrDuplicateName
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its id.
func (r *MockProductRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

// ExistsByName reports whether another product already uses the name.
func (r *MockProductRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Name == name && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
