package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/catalog"
)

// ProductHandler serves the product CRUD surface plus bulk delete and
// presigned image uploads.
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
	uploadService  *catalog.ImageUploadService
}

func NewProductHandler(productService *catalog.ProductService, uploadService *catalog.ImageUploadService) *ProductHandler {
	return &ProductHandler{productService: productService, uploadService: uploadService}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/products")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.POST("/bulk-delete", h.BulkDelete)
	group.POST("/:id/images/upload-url", h.GenerateUploadURL)
}

func (h *ProductHandler) List(c *gin.Context) {
	var filter catalog.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	products, page, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Products retrieved", products, page)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product retrieved", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Product created", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product updated", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Product deleted", nil)
}

func (h *ProductHandler) BulkDelete(c *gin.Context) {
	var req catalog.BulkDeleteProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	if err := h.productService.BulkDelete(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Products deleted", nil)
}

func (h *ProductHandler) GenerateUploadURL(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req catalog.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.uploadService.GenerateUploadURL(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Upload URL generated", resp)
}
