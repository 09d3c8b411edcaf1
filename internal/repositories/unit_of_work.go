package repositories

import (
	"context"

	"gorm.io/gorm"
)

// NewGORMRepositories builds the repository bundle over a database handle.
// Passing a transaction handle binds every repository to that transaction.
func NewGORMRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Categories: NewGORMCategoryRepository(db),
		Products:   NewGORMProductRepository(db),
		Reviews:    NewGORMReviewRepository(db),
		Carts:      NewGORMCartRepository(db),
		Orders:     NewGORMOrderRepository(db),
		Users:      NewGORMUserRepository(db),
	}
}

// GORMUnitOfWork is a GORM implementation of UnitOfWork: the callback runs
// inside one database transaction, and an error rolls every change back.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Execute runs fn against transaction-bound repositories.
func (u *GORMUnitOfWork) Execute(ctx context.Context, fn func(repos *Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMRepositories(tx))
	})
}
