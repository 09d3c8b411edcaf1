package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/results"
	"storefront/internal/services"
)

func newProductService(f *fixture) *services.ProductService {
	return services.NewProductService(f.repos, f.uow, f.store)
}

func TestProductServiceCreate(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")

	result, err := service.Create(f.ctx, dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, results.Created, result.Kind)
	assert.NotZero(t, result.Data.ID)
	assert.Equal(t, "Shoes", result.Data.CategoryName)
}

func TestProductServiceCreateUnknownCategory(t *testing.T) {
	f := newFixture()
	service := newProductService(f)

	result, err := service.Create(f.ctx, dto.CreateProductRequest{
		Name:       "Runner",
		Price:      50,
		CategoryID: 9999,
	})
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)
	assert.Equal(t, services.MsgCategoryNotFound, result.Message)
}

func TestProductServiceCreateDuplicateName(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")
	f.seedProduct(t, "Runner", 50, category.ID)

	result, err := service.Create(f.ctx, dto.CreateProductRequest{
		Name:       "Runner",
		Price:      60,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, results.Duplicated, result.Kind)
	assert.Equal(t, services.MsgProductNameTaken, result.Message)
}

func TestProductServiceUpdatePartial(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")
	product := f.seedProduct(t, "Runner", 10, category.ID)

	// Only the price is supplied: the name must survive.
	result, err := service.Update(f.ctx, product.ID, dto.UpdateProductRequest{Price: ptr(20.0)})
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, "Runner", result.Data.Name)
	assert.Equal(t, 20.0, result.Data.Price)

	// Only the name is supplied: the price must survive.
	result, err = service.Update(f.ctx, product.ID, dto.UpdateProductRequest{Name: ptr("Walker")})
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, "Walker", result.Data.Name)
	assert.Equal(t, 20.0, result.Data.Price)
}

func TestProductServiceUpdateUnknownIDAndCategory(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")
	product := f.seedProduct(t, "Runner", 10, category.ID)

	result, err := service.Update(f.ctx, 9999, dto.UpdateProductRequest{Price: ptr(20.0)})
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)
	assert.Equal(t, services.MsgProductNotFound, result.Message)

	result, err = service.Update(f.ctx, product.ID, dto.UpdateProductRequest{CategoryID: ptr(uint(9999))})
	require.NoError(t, err)
	assert.Equal(t, results.NotFound, result.Kind)
	assert.Equal(t, services.MsgCategoryNotFound, result.Message)
}

func TestProductServiceRatingAggregates(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")
	product := f.seedProduct(t, "Runner", 50, category.ID)

	require.NoError(t, f.repos.Reviews.Add(&models.ProductReview{ProductID: product.ID, UserID: 1, Rating: 5}))
	require.NoError(t, f.repos.Reviews.Add(&models.ProductReview{ProductID: product.ID, UserID: 2, Rating: 4}))

	result, err := service.GetByID(f.ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, results.Success, result.Kind)
	assert.Equal(t, 4.5, result.Data.AverageRating)
	assert.Equal(t, int64(2), result.Data.TotalReviews)

	list, err := service.List(f.ctx, results.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Data.Items, 1)
	assert.Equal(t, 4.5, list.Data.Items[0].AverageRating)
	assert.Equal(t, int64(2), list.Data.Items[0].TotalReviews)
}

func TestProductServiceGetByIDUnknownIsNeverSuccess(t *testing.T) {
	f := newFixture()
	service := newProductService(f)

	for _, id := range []uint{1, 42, 9999} {
		result, err := service.GetByID(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, results.NotFound, result.Kind)
	}
}

func TestProductServiceDeleteInvalidatesCache(t *testing.T) {
	f := newFixture()
	service := newProductService(f)
	category := f.seedCategory(t, "Shoes")
	product := f.seedProduct(t, "Runner", 50, category.ID)

	p := results.PaginationParams{Page: 1, PageSize: 10}
	list, err := service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Len(t, list.Data.Items, 1)

	deleted, err := service.Delete(f.ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, results.NoContent, deleted.Kind)

	list, err = service.List(f.ctx, p)
	require.NoError(t, err)
	assert.Empty(t, list.Data.Items)
	assert.Equal(t, int64(0), list.Data.TotalCount)
}
