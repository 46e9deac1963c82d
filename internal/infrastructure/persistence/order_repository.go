package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, with user and items loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindPage returns one page of orders and the total match count. The users
// table is always joined so search constraints may reference user columns;
// count and page read share one transaction snapshot.
func (r *GormOrderRepository) FindPage(ctx context.Context, q shared.ListQuery) ([]order.Order, int64, error) {
	var orders []order.Order
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		base := tx.Model(&order.Order{}).
			Joins("LEFT JOIN users ON users.id = orders.user_id")
		base = applyConstraints(base, q.Predicate).Session(&gorm.Session{})

		if err := base.Count(&total).Error; err != nil {
			return err
		}

		page := applyWindow(applyOrder(base, q, OrderSortFields, "orders.created_at", "orders.id"), q).
			Preload("User").
			Preload("Items")
		return page.Find(&orders).Error
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Save creates or updates an order together with its items
func (r *GormOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Omit("User").
		Save(o).Error
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
