package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/catalog"
)

type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/categories")
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *CategoryHandler) List(c *gin.Context) {
	var filter catalog.CategoryListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	categories, page, err := h.categoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paged(c, "Categories retrieved", categories, page)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category retrieved", category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Category created", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}
	var req catalog.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category updated", category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := h.ParseUUIDParam(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Category deleted", nil)
}
