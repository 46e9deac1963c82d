package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Repository defines the interface for inventory persistence
type Repository interface {
	// FindByProductID finds the inventory record for a product
	FindByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItem, error)

	// FindByProductIDs finds inventory records for multiple products
	FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]InventoryItem, error)

	// FindPage returns one page of inventory records matching the query
	// together with the total match count
	FindPage(ctx context.Context, q shared.ListQuery) ([]InventoryItem, int64, error)

	// Save creates or updates an inventory record
	Save(ctx context.Context, item *InventoryItem) error
}
