package repositories

import (
	"storefront/internal/models"
	"storefront/internal/results"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; the only mutation after creation is a status change.
type OrderRepository interface {
	Add(order *models.Order) error
	GetByIDWithItems(id uint) (*models.Order, error)
	GetByUserIDPaged(userID uint, p results.PaginationParams) ([]models.Order, int64, error)
	UpdateStatus(id uint, status models.OrderStatus) error
}
