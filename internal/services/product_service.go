package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"storefront/internal/cache"
	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/results"
)

// ProductService handles business logic related to products. Listings use the
// same generation-keyed cache-aside scheme as categories and attach rating
// aggregates through one batch query per page.
type ProductService struct {
	repos      *repositories.Repositories
	uow        repositories.UnitOfWork
	cache      cache.Store
	generation atomic.Uint64
}

// NewProductService creates a new ProductService.
func NewProductService(repos *repositories.Repositories, uow repositories.UnitOfWork, store cache.Store) *ProductService {
	return &ProductService{
		repos: repos,
		uow:   uow,
		cache: store,
	}
}

func (s *ProductService) listKey(p results.PaginationParams) string {
	return fmt.Sprintf("products:g%d:p%d:s%d", s.generation.Load(), p.Page, p.PageSize)
}

func (s *ProductService) invalidateListCache() {
	s.generation.Add(1)
}

// List returns one page of products with their rating aggregates, serving
// from cache when a fresh entry exists for the current generation.
func (s *ProductService) List(ctx context.Context, p results.PaginationParams) (results.Result[results.Paged[dto.ProductResponse]], error) {
	key := s.listKey(p)
	if raw, ok := s.cache.TryGet(ctx, key); ok {
		var page results.Paged[dto.ProductResponse]
		if err := json.Unmarshal(raw, &page); err == nil {
			return results.Ok(page), nil
		}
		s.cache.Remove(ctx, key)
	}

	products, total, err := s.repos.Products.GetAllPaged(p)
	if err != nil {
		return results.Result[results.Paged[dto.ProductResponse]]{}, err
	}

	ids := make([]uint, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	summaries, err := s.repos.Reviews.GetRatingSummaryBatch(ids)
	if err != nil {
		return results.Result[results.Paged[dto.ProductResponse]]{}, err
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, mapProduct(&products[i], summaries[products[i].ID]))
	}
	page := results.NewPaged(items, p, total)

	if raw, err := json.Marshal(page); err == nil {
		s.cache.Set(ctx, key, raw, listCacheTTL)
	}
	return results.Ok(page), nil
}

// GetByID returns a single product with its rating aggregate, or NotFound.
func (s *ProductService) GetByID(ctx context.Context, id uint) (results.Result[dto.ProductResponse], error) {
	product, err := s.repos.Products.GetByID(id)
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	if product == nil {
		return results.NotFoundResult[dto.ProductResponse](MsgProductNotFound), nil
	}

	summaries, err := s.repos.Reviews.GetRatingSummaryBatch([]uint{id})
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	return results.Ok(mapProduct(product, summaries[id])), nil
}

// Create inserts a new product after checking the referenced category exists
// and the name is free.
func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (results.Result[dto.ProductResponse], error) {
	category, err := s.repos.Categories.GetByID(req.CategoryID)
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	if category == nil {
		return results.NotFoundResult[dto.ProductResponse](MsgCategoryNotFound), nil
	}

	taken, err := s.repos.Products.ExistsByName(req.Name, 0)
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	if taken {
		return results.DuplicatedResult[dto.ProductResponse](MsgProductNameTaken), nil
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Products.Add(product)
	})
	if errors.Is(err, repositories.ErrDuplicateName) {
		return results.DuplicatedResult[dto.ProductResponse](MsgProductNameTaken), nil
	}
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}

	s.invalidateListCache()
	product.Category = category
	return results.CreatedResult(mapProduct(product, models.RatingSummary{})), nil
}

// Update applies a partial update: only supplied fields overwrite the entity,
// so a zero price or empty name in the JSON body never clobbers data.
func (s *ProductService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (results.Result[dto.ProductResponse], error) {
	product, err := s.repos.Products.GetByID(id)
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	if product == nil {
		return results.NotFoundResult[dto.ProductResponse](MsgProductNotFound), nil
	}

	if req.Name != nil && *req.Name != product.Name {
		taken, err := s.repos.Products.ExistsByName(*req.Name, id)
		if err != nil {
			return results.Result[dto.ProductResponse]{}, err
		}
		if taken {
			return results.DuplicatedResult[dto.ProductResponse](MsgProductNameTaken), nil
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		category, err := s.repos.Categories.GetByID(*req.CategoryID)
		if err != nil {
			return results.Result[dto.ProductResponse]{}, err
		}
		if category == nil {
			return results.NotFoundResult[dto.ProductResponse](MsgCategoryNotFound), nil
		}
		product.CategoryID = *req.CategoryID
		product.Category = category
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Products.Update(product)
	})
	if errors.Is(err, repositories.ErrDuplicateName) {
		return results.DuplicatedResult[dto.ProductResponse](MsgProductNameTaken), nil
	}
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}

	s.invalidateListCache()
	summaries, err := s.repos.Reviews.GetRatingSummaryBatch([]uint{id})
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	return results.Ok(mapProduct(product, summaries[id])), nil
}

// Delete removes a product, returning NoContent or NotFound.
func (s *ProductService) Delete(ctx context.Context, id uint) (results.Result[dto.ProductResponse], error) {
	var deleted bool
	err := s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		var err error
		deleted, err = r.Products.Delete(id)
		return err
	})
	if err != nil {
		return results.Result[dto.ProductResponse]{}, err
	}
	if !deleted {
		return results.NotFoundResult[dto.ProductResponse](MsgProductNotFound), nil
	}

	s.invalidateListCache()
	return results.NoContentResult[dto.ProductResponse](), nil
}

func mapProduct(product *models.Product, summary models.RatingSummary) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		CategoryID:    product.CategoryID,
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	return resp
}
