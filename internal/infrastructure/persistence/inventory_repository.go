package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/inventory"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// GormInventoryRepository implements inventory.Repository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByProductID retrieves the stock record for a product
func (r *GormInventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "product_id = ?", productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByProductIDs retrieves stock records for a set of products. Products
// without a record are simply absent from the result.
func (r *GormInventoryRepository) FindByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]inventory.InventoryItem, error) {
	if len(productIDs) == 0 {
		return []inventory.InventoryItem{}, nil
	}
	var items []inventory.InventoryItem
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindPage returns one page of stock records along with the total count
func (r *GormInventoryRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]inventory.InventoryItem, int64, error) {
	var (
		items []inventory.InventoryItem
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := applyConstraints(tx.Model(&inventory.InventoryItem{}), q.Predicate)
		if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return err
		}

		page := applyOrder(base.Session(&gorm.Session{}), q, InventorySortFields, "updated_at", "id")
		return applyWindow(page, q).Find(&items).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Save persists a stock record
func (r *GormInventoryRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

var _ inventory.Repository = (*GormInventoryRepository)(nil)
