package repositories

import (
	"context"
	"errors"
)

// ErrDuplicateName is returned by Add/Update when a uniqueness constraint on
// a name column is violated. Implementations translate their driver's
// conflict error into this sentinel so services can map it to a Duplicated
// result.
var ErrDuplicateName = errors.New("name already exists")

// Repositories bundles the per-entity repositories bound to one data source.
// Inside a unit of work the bundle is bound to the transaction instead.
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
	Reviews    ReviewRepository
	Carts      CartRepository
	Orders     OrderRepository
	Users      UserRepository
}

// UnitOfWork runs a set of entity changes as one atomic commit. The callback
// receives repositories bound to the transaction; returning an error rolls
// every change back.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(repos *Repositories) error) error
}
