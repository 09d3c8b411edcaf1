package repositories

import "context"

// NewMockRepositories builds a fully in-memory repository bundle. The cart
// and order mocks share the product mock so lines resolve their products the
// way GORM preloads do.
func NewMockRepositories() *Repositories {
	products := NewMockProductRepository()
	return &Repositories{
		Categories: NewMockCategoryRepository(),
		Products:   products,
		Reviews:    NewMockReviewRepository(),
		Carts:      NewMockCartRepository(products),
		Orders:     NewMockOrderRepository(products),
		Users:      NewMockUserRepository(),
	}
}

// MemoryUnitOfWork is an in-memory UnitOfWork for tests and mock wiring. It
// applies changes directly; there is no rollback, so callbacks that fail
// midway may leave partial state behind.
type MemoryUnitOfWork struct {
	repos *Repositories
}

// NewMemoryUnitOfWork creates a new instance of MemoryUnitOfWork.
func NewMemoryUnitOfWork(repos *Repositories) *MemoryUnitOfWork {
	return &MemoryUnitOfWork{repos: repos}
}

// Execute runs fn against the shared in-memory repositories.
func (u *MemoryUnitOfWork) Execute(_ context.Context, fn func(repos *Repositories) error) error {
	return fn(u.repos)
}
