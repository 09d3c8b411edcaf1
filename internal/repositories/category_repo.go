package repositories

import (
	"storefront/internal/models"
	"storefront/internal/results"
)

// CategoryRepository defines the interface for category data access.
// Lookup methods return (nil, nil) when the row does not exist; errors are
// reserved for infrastructure faults.
type CategoryRepository interface {
	GetAllPaged(p results.PaginationParams) ([]models.Category, int64, error)
	GetByID(id uint) (*models.Category, error)
	Add(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uint) (bool, error)
	ExistsByName(name string, excludeID uint) (bool, error)
}
