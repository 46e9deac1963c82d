package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// maxInventoryPageSize caps how many inventory rows one listing page may return
const maxInventoryPageSize = 100

// inventorySortColumns maps API sort keys to store columns
var inventorySortColumns = map[string]string{
	"createdAt":         "created_at",
	"updatedAt":         "updated_at",
	"quantity":          "quantity",
	"lowStockThreshold": "low_stock_threshold",
}

// InventoryService handles stock level reads and the atomic bulk update
type InventoryService struct {
	items    inventory.Repository
	products catalog.ProductRepository
	scope    inventory.TransactionScope
	logger   *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	items inventory.Repository,
	products catalog.ProductRepository,
	scope inventory.TransactionScope,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{items: items, products: products, scope: scope, logger: logger}
}

// List retrieves one page of inventory records with their product summaries
func (s *InventoryService) List(ctx context.Context, filter InventoryListFilter) ([]InventoryItemResponse, shared.PageInfo, error) {
	q := shared.ListQuery{
		SortBy:    inventorySortColumns[filter.SortBy],
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}.Normalize(maxInventoryPageSize)

	p := shared.Predicate{}
	if filter.ProductID != nil {
		p = p.AndEq("product_id", *filter.ProductID)
	}
	q.Predicate = p

	items, total, err := s.items.FindPage(ctx, q)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}

	productsByID, err := s.loadProducts(ctx, items)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}

	responses := make([]InventoryItemResponse, len(items))
	for i := range items {
		responses[i] = ToInventoryItemResponse(&items[i], productsByID[items[i].ProductID])
	}
	return responses, shared.NewPageInfo(total, q.Page, q.Limit), nil
}

// GetByProductID retrieves the inventory record for one product
func (s *InventoryService) GetByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItemResponse, error) {
	item, err := s.items.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var product *catalog.Product
	products, err := s.products.FindByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	if len(products) == 1 {
		product = &products[0]
	}

	resp := ToInventoryItemResponse(item, product)
	return &resp, nil
}

// BulkUpdate sets quantities for a batch of products inside one transaction.
// One unknown product fails the whole batch and leaves every row untouched.
func (s *InventoryService) BulkUpdate(ctx context.Context, req BulkUpdateRequest) ([]InventoryItemResponse, error) {
	productIDs := make([]uuid.UUID, 0, len(req.Updates))
	seen := make(map[uuid.UUID]bool, len(req.Updates))
	for _, u := range req.Updates {
		if seen[u.ProductID] {
			return nil, shared.NewDomainError("DUPLICATE_PRODUCT",
				fmt.Sprintf("Product %s appears more than once in the batch", u.ProductID))
		}
		seen[u.ProductID] = true
		productIDs = append(productIDs, u.ProductID)
	}

	var updated []inventory.InventoryItem
	err := s.scope.Execute(ctx, func(repos inventory.TxRepositories) error {
		known, err := repos.Products().FindByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		if len(known) != len(productIDs) {
			knownIDs := make(map[uuid.UUID]bool, len(known))
			for i := range known {
				knownIDs[known[i].ID] = true
			}
			for _, id := range productIDs {
				if !knownIDs[id] {
					return shared.NewDomainError("INVALID_PRODUCT",
						fmt.Sprintf("Product %s does not exist", id))
				}
			}
		}

		for _, u := range req.Updates {
			item, err := repos.Inventory().FindByProductID(ctx, u.ProductID)
			if errors.Is(err, shared.ErrNotFound) {
				item, err = inventory.NewInventoryItem(u.ProductID, u.Quantity, 0)
				if err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else if err := item.SetQuantity(u.Quantity); err != nil {
				return err
			}
			if err := repos.Inventory().Save(ctx, item); err != nil {
				return err
			}
			updated = append(updated, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory bulk update applied", zap.Int("items", len(updated)))

	productsByID, err := s.loadProducts(ctx, updated)
	if err != nil {
		return nil, err
	}

	responses := make([]InventoryItemResponse, len(updated))
	for i := range updated {
		responses[i] = ToInventoryItemResponse(&updated[i], productsByID[updated[i].ProductID])
	}
	return responses, nil
}

func (s *InventoryService) loadProducts(ctx context.Context, items []inventory.InventoryItem) (map[uuid.UUID]*catalog.Product, error) {
	if len(items) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ProductID
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return byID, nil
}
