package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID, with category and images loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindPage returns one page of products matching the query together
	// with the total match count, both read from a consistent snapshot
	FindPage(ctx context.Context, q shared.ListQuery) ([]Product, int64, error)

	// FindByIDs finds multiple products by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// ExistsBySKU checks whether a product with the given SKU exists
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// Save creates or updates a product together with its images
	Save(ctx context.Context, product *Product) error

	// DeleteBatch soft-deletes the given products atomically; if any ID
	// has no matching row the whole batch fails
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error

	// CountByCategory counts products attached to a category
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindPage returns one page of categories matching the query with the
	// total match count
	FindPage(ctx context.Context, q shared.ListQuery) ([]Category, int64, error)

	// ExistsByCode checks whether a category with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete removes a category
	Delete(ctx context.Context, id uuid.UUID) error
}
