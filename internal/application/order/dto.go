package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/order"
)

// OrderListFilter represents the query parameters of the order listing
type OrderListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status"`
	UserID    *uuid.UUID `form:"userId"`
	Page      int        `form:"page"`
	Limit     int        `form:"limit"`
	SortBy    string     `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt orderNumber status totalAmount"`
	SortOrder string     `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// UpdateOrderStatusRequest asks for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderBuyerResponse is the buyer summary embedded in order responses
type OrderBuyerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// OrderResponse represents an order in API responses. Status values are
// uppercase on the wire.
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	UserID      uuid.UUID           `json:"userId"`
	User        *OrderBuyerResponse `json:"user,omitempty"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
	PaidAt      *string             `json:"paidAt,omitempty"`
	ShippedAt   *string             `json:"shippedAt,omitempty"`
	DeliveredAt *string             `json:"deliveredAt,omitempty"`
	CancelledAt *string             `json:"cancelledAt,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      strings.ToUpper(string(o.Status)),
		TotalAmount: o.TotalAmount,
		Items:       make([]OrderItemResponse, 0, len(o.Items)),
		PaidAt:      formatTimePtr(o.PaidAt),
		ShippedAt:   formatTimePtr(o.ShippedAt),
		DeliveredAt: formatTimePtr(o.DeliveredAt),
		CancelledAt: formatTimePtr(o.CancelledAt),
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
	}

	for i := range o.Items {
		item := &o.Items[i]
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	if o.User != nil {
		resp.User = &OrderBuyerResponse{
			ID:    o.User.ID,
			Name:  o.User.Name,
			Email: o.User.Email,
		}
	}
	return resp
}

// ToOrderResponses converts a slice of domain Orders to responses
func ToOrderResponses(orders []order.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
