package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"storefront/internal/cache"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// fixture bundles the in-memory collaborators every service test wires.
type fixture struct {
	repos *repositories.Repositories
	uow   repositories.UnitOfWork
	store *cache.MemoryStore
	ctx   context.Context
}

func newFixture() *fixture {
	repos := repositories.NewMockRepositories()
	return &fixture{
		repos: repos,
		uow:   repositories.NewMemoryUnitOfWork(repos),
		store: cache.NewMemoryStore(),
		ctx:   context.Background(),
	}
}

func (f *fixture) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, f.repos.Categories.Add(category))
	return category
}

func (f *fixture) seedProduct(t *testing.T, name string, price float64, categoryID uint) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: price, CategoryID: categoryID}
	require.NoError(t, f.repos.Products.Add(product))
	return product
}

func ptr[T any](v T) *T {
	return &v
}
