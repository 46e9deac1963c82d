package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/order"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// maxOrderPageSize caps how many orders one listing page may return
const maxOrderPageSize = 100

// orderSortColumns maps API sort keys to store columns. Columns are
// table-qualified because listings join the users table.
var orderSortColumns = map[string]string{
	"createdAt":   "orders.created_at",
	"updatedAt":   "orders.updated_at",
	"orderNumber": "orders.order_number",
	"status":      "orders.status",
	"totalAmount": "orders.total_amount",
}

var orderSearchFields = []string{"orders.order_number", "users.name", "users.email"}

// Service handles order-related business operations
type Service struct {
	orders order.Repository
}

// NewService creates a new order Service
func NewService(orders order.Repository) *Service {
	return &Service{orders: orders}
}

// List retrieves one page of orders, newest first by default
func (s *Service) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, shared.PageInfo, error) {
	q := shared.ListQuery{
		SortBy:    orderSortColumns[filter.SortBy],
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}.Normalize(maxOrderPageSize)

	p := shared.Predicate{}
	if filter.Status != "" {
		status, err := parseStatus(filter.Status)
		if err != nil {
			return nil, shared.PageInfo{}, err
		}
		p = p.AndEq("orders.status", status)
	}
	if filter.UserID != nil {
		p = p.AndEq("orders.user_id", *filter.UserID)
	}
	p = p.AndSearch(filter.Search, orderSearchFields...)
	q.Predicate = p

	orders, total, err := s.orders.FindPage(ctx, q)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}
	return ToOrderResponses(orders), shared.NewPageInfo(total, q.Page, q.Limit), nil
}

// GetByID retrieves an order by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(o)
	return &resp, nil
}

// UpdateStatus transitions an order to a new status
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.TransitionTo(status); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(o)
	return &resp, nil
}

// parseStatus accepts wire status values case-insensitively
func parseStatus(raw string) (order.Status, error) {
	status := order.Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", shared.NewDomainError("INVALID_STATUS", fmt.Sprintf("Unknown order status %q", raw))
	}
	return status, nil
}
