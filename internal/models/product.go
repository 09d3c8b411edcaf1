package models

import "time"

// Product is a catalog item belonging to one category.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	CategoryID  uint      `json:"category_id" validate:"required,gt=0"`
	Category    *Category `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
