package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/inventory"
)

// InventoryListFilter represents the query parameters of the inventory listing
type InventoryListFilter struct {
	ProductID *uuid.UUID `form:"productId"`
	Page      int        `form:"page"`
	Limit     int        `form:"limit"`
	SortBy    string     `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt quantity lowStockThreshold"`
	SortOrder string     `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// QuantityUpdate sets the on-hand quantity for one product
type QuantityUpdate struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// BulkUpdateRequest applies several quantity updates as one atomic batch
type BulkUpdateRequest struct {
	Updates []QuantityUpdate `json:"updates" binding:"required,min=1,max=100,dive"`
}

// ProductSummary is the slice of product data shown on inventory rows
type ProductSummary struct {
	Title string `json:"title"`
	SKU   string `json:"sku"`
}

// InventoryItemResponse represents an inventory record in API responses
type InventoryItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ProductID         uuid.UUID       `json:"productId"`
	Quantity          int             `json:"quantity"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	IsLowStock        bool            `json:"isLowStock"`
	Product           *ProductSummary `json:"product,omitempty"`
	CreatedAt         string          `json:"createdAt"`
	UpdatedAt         string          `json:"updatedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToInventoryItemResponse converts a domain InventoryItem to a response.
// product may be nil when the owning product was not loaded.
func ToInventoryItemResponse(item *inventory.InventoryItem, product *catalog.Product) InventoryItemResponse {
	resp := InventoryItemResponse{
		ID:                item.ID,
		ProductID:         item.ProductID,
		Quantity:          item.Quantity,
		LowStockThreshold: item.LowStockThreshold,
		IsLowStock:        item.IsLowStock(),
		CreatedAt:         formatTime(item.CreatedAt),
		UpdatedAt:         formatTime(item.UpdatedAt),
	}
	if product != nil {
		resp.Product = &ProductSummary{Title: product.Title, SKU: product.SKU}
	}
	return resp
}
