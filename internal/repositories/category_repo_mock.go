package repositories

import (
	"sort"
	"sync"

	"storefront/internal/models"
	"storefront/internal/results"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[uint]models.Category
	nextID     uint
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository.
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[uint]models.Category),
		nextID:     1,
	}
}

// GetAllPaged returns one page of categories ordered by id.
func (r *MockCategoryRepository) GetAllPaged(p results.PaginationParams) ([]models.Category, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	return pageSlice(all, p), int64(len(all)), nil
}

// GetByID returns a category by its id, or (nil, nil) if absent.
func (r *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

// Add stores a new category, enforcing name uniqueness like the real index.
func (r *MockCategoryRepository) Add(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name {
			return ErrDuplicateName
		}
	}
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = *category
	return nil
}

// Update overwrites an existing category.
func (r *MockCategoryRepository) Update(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if c.Name == category.Name && c.ID != category.ID {
			return ErrDuplicateName
		}
	}
	r.categories[category.ID] = *category
	return nil
}

// Delete removes a category by its id.
func (r *MockCategoryRepository) Delete(id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	return true, nil
}

// ExistsByName reports whether another category already uses the name.
func (r *MockCategoryRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// pageSlice cuts one page out of an already sorted slice.
func pageSlice[T any](all []T, p results.PaginationParams) []T {
	start := p.Offset()
	if start >= len(all) {
		return []T{}
	}
	end := start + p.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
