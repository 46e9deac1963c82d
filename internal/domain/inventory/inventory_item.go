package inventory

import (
	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// InventoryItem tracks the on-hand quantity of one product.
// There is exactly one row per product.
type InventoryItem struct {
	shared.BaseEntity
	ProductID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity          int       `gorm:"not null;default:0"`
	LowStockThreshold int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates an inventory record for a product
func NewInventoryItem(productID uuid.UUID, quantity, lowStockThreshold int) (*InventoryItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	if lowStockThreshold < 0 {
		return nil, shared.NewDomainError("INVALID_THRESHOLD", "Low stock threshold cannot be negative")
	}

	return &InventoryItem{
		BaseEntity:        shared.NewBaseEntity(),
		ProductID:         productID,
		Quantity:          quantity,
		LowStockThreshold: lowStockThreshold,
	}, nil
}

// SetQuantity replaces the on-hand quantity
func (i *InventoryItem) SetQuantity(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	i.Quantity = quantity
	i.Touch()
	return nil
}

// IsLowStock reports whether the quantity has fallen to the threshold
func (i *InventoryItem) IsLowStock() bool {
	return i.LowStockThreshold > 0 && i.Quantity <= i.LowStockThreshold
}
