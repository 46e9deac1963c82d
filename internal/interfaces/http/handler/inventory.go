package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/inventory"
)

type InventoryHandler struct {
	BaseHandler
	inventoryService *inventory.InventoryService
}

func NewInventoryHandler(inventoryService *inventory.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/inventory")
	group.GET("", h.List)
	group.GET("/:id", h.GetByProduct)
	group.POST("/bulk-update", h.BulkUpdate)
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter inventory.InventoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	items, page, err := h.inventoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Inventory retrieved", items, page)
}

// GetByProduct looks an item up by its product ID, which is the handle
// clients hold.
func (h *InventoryHandler) GetByProduct(c *gin.Context) {
	productID, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetByProductID(c.Request.Context(), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Inventory item retrieved", item)
}

func (h *InventoryHandler) BulkUpdate(c *gin.Context) {
	var req inventory.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	items, err := h.inventoryService.BulkUpdate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Inventory updated", items)
}
