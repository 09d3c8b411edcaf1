package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/dto"
	"storefront/internal/results"
	"storefront/internal/services"
)

func newCategoryService(f *fixture) *services.CategoryService {
	return services.NewCategoryService(f.repos, f.uow, f.store)
}

func TestCategoryServiceListServesFromCache(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	f.seedCategory(t, "Shoes")
	f.seedCategory(t, "Shirts")

	p := results.PaginationParams{Page: 1, PageSize: 10}

	result, err := service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Len(t, result.Data.Items, 2)
	assert.Equal(t, int64(2), result.Data.TotalCount)

	// A write that bypasses the service does not invalidate the cache, so the
	// cached page is still served.
	f.seedCategory(t, "Hats")
	result, err = service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Len(t, result.Data.Items, 2)
}

func TestCategoryServiceWriteInvalidatesCache(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	f.seedCategory(t, "Shoes")

	p := results.PaginationParams{Page: 1, PageSize: 10}

	result, err := service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Len(t, result.Data.Items, 1)

	created, err := service.Create(f.ctx, dto.CreateCategoryRequest{Name: "Shirts"})
	require.NoError(t, err)
	assert.Equal(t, results.Created, created.Kind)

	// No List after the write may return data computed before it.
	result, err = service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Len(t, result.Data.Items, 2)
}

func TestCategoryServiceGetByID(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	category := f.seedCategory(t, "Shoes")

	result, err := service.GetByID(f.ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, "Shoes", result.Data.Name)

	result, err = service.GetByID(f.ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)
	assert.Equal(t, services.MsgCategoryNotFound, result.Message)
}

func TestCategoryServiceCreateDuplicateName(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)

	first, err := service.Create(f.ctx, dto.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, results.Created, first.Kind)
	assert.NotZero(t, first.Data.ID)

	second, err := service.Create(f.ctx, dto.CreateCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, results.Duplicated, second.Kind)
	assert.Equal(t, services.MsgCategoryNameTaken, second.Message)
}

func TestCategoryServiceUpdatePartial(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	category := f.seedCategory(t, "Shoes")

	// Absent name leaves the entity untouched.
	result, err := service.Update(f.ctx, category.ID, dto.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, "Shoes", result.Data.Name)

	result, err = service.Update(f.ctx, category.ID, dto.UpdateCategoryRequest{Name: ptr("Sneakers")})
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, "Sneakers", result.Data.Name)
}

func TestCategoryServiceUpdateNotFoundAndDuplicate(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	f.seedCategory(t, "Shoes")
	other := f.seedCategory(t, "Shirts")

	result, err := service.Update(f.ctx, 9999, dto.UpdateCategoryRequest{Name: ptr("Anything")})
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)

	result, err = service.Update(f.ctx, other.ID, dto.UpdateCategoryRequest{Name: ptr("Shoes")})
	require.NoError(t, err)
	assert.Equal(t, results.Duplicated, result.Kind)
}

func TestCategoryServiceDelete(t *testing.T) {
	f := newFixture()
	service := newCategoryService(f)
	category := f.seedCategory(t, "Shoes")

	result, err := service.Delete(f.ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, results.NoContent, result.Kind)

	result, err = service.Delete(f.ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)
}
