package repositories

import (
	"storefront/internal/models"
	"storefront/internal/results"
)

// ProductRepository defines the interface for product data access.
// GetAllPaged loads the owning category with each product so listings do not
// issue one query per row.
type ProductRepository interface {
	GetAllPaged(p results.PaginationParams) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Add(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) (bool, error)
	ExistsByName(name string, excludeID uint) (bool, error)
}
