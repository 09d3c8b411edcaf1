package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront/internal/models"
	"storefront/internal/results"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAllPaged retrieves one page of categories plus the total row count.
func (r *GORMCategoryRepository) GetAllPaged(p results.PaginationParams) ([]models.Category, int64, error) {
	var total int64
	if err := r.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []models.Category
	err := r.db.Order("id").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, total, nil
}

// GetByID retrieves a single category, or (nil, nil) if it does not exist.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

// Add inserts a new category. A unique-index conflict on the name column is
// reported as ErrDuplicateName.
func (r *GORMCategoryRepository) Add(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update saves the full category row.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}
	return nil
}

// Delete removes a category; the bool reports whether a row was deleted.
func (r *GORMCategoryRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete category %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ExistsByName reports whether another live category already uses the name.
func (r *GORMCategoryRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}
