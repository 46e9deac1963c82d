package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/order"
)

type OrderHandler struct {
	BaseHandler
	orderService *order.Service
}

func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/orders")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PATCH("/:id/status", h.UpdateStatus)
}

func (h *OrderHandler) List(c *gin.Context) {
	var filter order.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	orders, page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Orders retrieved", orders, page)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	ord, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Order retrieved", ord)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req order.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	ord, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Order status updated", ord)
}
