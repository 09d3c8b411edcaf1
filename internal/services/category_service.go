package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"storefront/internal/cache"
	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/results"
)

// listCacheTTL bounds how long a cached catalog page may live even without an
// intervening write.
const listCacheTTL = 5 * time.Minute

// CategoryService handles business logic related to categories. Listings are
// cache-aside; every write bumps a generation counter embedded in the list
// keys, so no page computed before the write can be served afterwards.
// Superseded generations age out via the TTL.
type CategoryService struct {
	repos      *repositories.Repositories
	uow        repositories.UnitOfWork
	cache      cache.Store
	generation atomic.Uint64
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repos *repositories.Repositories, uow repositories.UnitOfWork, store cache.Store) *CategoryService {
	return &CategoryService{
		repos: repos,
		uow:   uow,
		cache: store,
	}
}

func (s *CategoryService) listKey(p results.PaginationParams) string {
	return fmt.Sprintf("categories:g%d:p%d:s%d", s.generation.Load(), p.Page, p.PageSize)
}

func (s *CategoryService) invalidateListCache() {
	s.generation.Add(1)
}

// List returns one page of categories, serving from cache when a fresh entry
// exists for the current generation.
func (s *CategoryService) List(ctx context.Context, p results.PaginationParams) (results.Result[results.Paged[dto.CategoryResponse]], error) {
	key := s.listKey(p)
	if raw, ok := s.cache.TryGet(ctx, key); ok {
		var page results.Paged[dto.CategoryResponse]
		if err := json.Unmarshal(raw, &page); err == nil {
			return results.Ok(page), nil
		}
		s.cache.Remove(ctx, key)
	}

	categories, total, err := s.repos.Categories.GetAllPaged(p)
	if err != nil {
		return results.Result[results.Paged[dto.CategoryResponse]]{}, err
	}

	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, mapCategory(&c))
	}
	page := results.NewPaged(items, p, total)

	if raw, err := json.Marshal(page); err == nil {
		s.cache.Set(ctx, key, raw, listCacheTTL)
	}
	return results.Ok(page), nil
}

// GetByID returns a single category or NotFound.
func (s *CategoryService) GetByID(ctx context.Context, id uint) (results.Result[dto.CategoryResponse], error) {
	category, err := s.repos.Categories.GetByID(id)
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}
	if category == nil {
		return results.NotFoundResult[dto.CategoryResponse](MsgCategoryNotFound), nil
	}
	return results.Ok(mapCategory(category)), nil
}

// Create inserts a new category. The ExistsByName pre-check answers the
// common case early; the unique index remains the authority under races.
func (s *CategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (results.Result[dto.CategoryResponse], error) {
	taken, err := s.repos.Categories.ExistsByName(req.Name, 0)
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}
	if taken {
		return results.DuplicatedResult[dto.CategoryResponse](MsgCategoryNameTaken), nil
	}

	category := &models.Category{Name: req.Name}
	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Categories.Add(category)
	})
	if errors.Is(err, repositories.ErrDuplicateName) {
		return results.DuplicatedResult[dto.CategoryResponse](MsgCategoryNameTaken), nil
	}
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}

	s.invalidateListCache()
	return results.CreatedResult(mapCategory(category)), nil
}

// Update applies a partial update: only supplied fields overwrite the entity.
func (s *CategoryService) Update(ctx context.Context, id uint, req dto.UpdateCategoryRequest) (results.Result[dto.CategoryResponse], error) {
	category, err := s.repos.Categories.GetByID(id)
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}
	if category == nil {
		return results.NotFoundResult[dto.CategoryResponse](MsgCategoryNotFound), nil
	}

	if req.Name != nil && *req.Name != category.Name {
		taken, err := s.repos.Categories.ExistsByName(*req.Name, id)
		if err != nil {
			return results.Result[dto.CategoryResponse]{}, err
		}
		if taken {
			return results.DuplicatedResult[dto.CategoryResponse](MsgCategoryNameTaken), nil
		}
		category.Name = *req.Name
	}

	err = s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		return r.Categories.Update(category)
	})
	if errors.Is(err, repositories.ErrDuplicateName) {
		return results.DuplicatedResult[dto.CategoryResponse](MsgCategoryNameTaken), nil
	}
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}

	s.invalidateListCache()
	return results.Ok(mapCategory(category)), nil
}

// Delete removes a category, returning NoContent or NotFound.
func (s *CategoryService) Delete(ctx context.Context, id uint) (results.Result[dto.CategoryResponse], error) {
	var deleted bool
	err := s.uow.Execute(ctx, func(r *repositories.Repositories) error {
		var err error
		deleted, err = r.Categories.Delete(id)
		return err
	})
	if err != nil {
		return results.Result[dto.CategoryResponse]{}, err
	}
	if !deleted {
		return results.NotFoundResult[dto.CategoryResponse](MsgCategoryNotFound), nil
	}

	s.invalidateListCache()
	return results.NoContentResult[dto.CategoryResponse](), nil
}

func mapCategory(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: category.ID, Name: category.Name}
}
