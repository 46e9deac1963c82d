package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by its ID, with user and items loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindPage returns one page of orders matching the query together with
	// the total match count, both read from a consistent snapshot. Search
	// constraints may reference joined user columns.
	FindPage(ctx context.Context, q shared.ListQuery) ([]Order, int64, error)

	// Save creates or updates an order together with its items
	Save(ctx context.Context, o *Order) error
}
