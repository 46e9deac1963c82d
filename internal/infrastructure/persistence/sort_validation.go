package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// columns. Returns the defaultField if the input is invalid, empty, or not
// in the whitelist. Caller-controlled strings never reach an ORDER BY
// without passing through here.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProductSortFields contains allowed sort columns for products
var ProductSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"sku":         true,
	"title":       true,
	"brand":       true,
	"price":       true,
	"is_active":   true,
	"category_id": true,
}

// CategorySortFields contains allowed sort columns for categories
var CategorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"sort_order": true,
}

// OrderSortFields contains allowed sort columns for orders. The columns are
// table-qualified because order listings join the users table.
var OrderSortFields = map[string]bool{
	"orders.id":           true,
	"orders.created_at":   true,
	"orders.updated_at":   true,
	"orders.order_number": true,
	"orders.status":       true,
	"orders.total_amount": true,
	"orders.user_id":      true,
}

// UserSortFields contains allowed sort columns for users
var UserSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"email":         true,
	"role":          true,
	"status":        true,
	"last_login_at": true,
}

// InventorySortFields contains allowed sort columns for inventory records
var InventorySortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"product_id":          true,
	"quantity":            true,
	"low_stock_threshold": true,
}
