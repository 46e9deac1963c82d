package inventory

import (
	"context"

	"github.com/shopadmin/backend/internal/domain/catalog"
)

// TxRepositories exposes the repositories bound to an open transaction.
type TxRepositories interface {
	Inventory() Repository
	Products() catalog.ProductRepository
}

// TransactionScope runs a unit of work atomically. If fn returns an error
// the whole unit rolls back and no partial writes remain visible.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}
