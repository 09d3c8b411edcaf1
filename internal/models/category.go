package models

import "time"

// Category groups products. Name is unique among live rows; the database
// index is the authority, service pre-checks are an optimization.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(50)" validate:"required,min=3,max=50"`
	Products  []Product `json:"-" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
