package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopadmin/backend/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	SKU            string              `json:"sku" binding:"required,min=1,max=50"`
	Title          string              `json:"title" binding:"required,min=1,max=200"`
	Description    string              `json:"description" binding:"max=5000"`
	Brand          string              `json:"brand" binding:"max=100"`
	CategoryID     *uuid.UUID          `json:"categoryId"`
	Price          decimal.Decimal     `json:"price" binding:"required"`
	CompareAtPrice *decimal.Decimal    `json:"compareAtPrice"`
	IsActive       *bool               `json:"isActive"`
	Images         []ProductImageInput `json:"images" binding:"omitempty,max=20,dive"`
}

// UpdateProductRequest represents a request to update a product.
// Absent fields keep their current value.
type UpdateProductRequest struct {
	Title          *string              `json:"title" binding:"omitempty,min=1,max=200"`
	Description    *string              `json:"description" binding:"omitempty,max=5000"`
	Brand          *string              `json:"brand" binding:"omitempty,max=100"`
	CategoryID     *uuid.UUID           `json:"categoryId"`
	Price          *decimal.Decimal     `json:"price"`
	CompareAtPrice *decimal.Decimal     `json:"compareAtPrice"`
	IsActive       *bool                `json:"isActive"`
	Images         *[]ProductImageInput `json:"images" binding:"omitempty,max=20,dive"`
}

// ProductImageInput carries one image in create/update payloads
type ProductImageInput struct {
	URL       string `json:"url" binding:"required,url,max=500"`
	AltText   string `json:"altText" binding:"max=200"`
	IsMain    bool   `json:"isMain"`
	SortOrder int    `json:"sortOrder" binding:"min=0"`
}

// BulkDeleteProductsRequest identifies the products to remove in one batch
type BulkDeleteProductsRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1,max=100"`
}

// ProductListFilter represents the query parameters of the product listing.
// Unknown query parameters are ignored by binding, never rejected.
type ProductListFilter struct {
	Search     string           `form:"search"`
	CategoryID *uuid.UUID       `form:"categoryId"`
	Brand      string           `form:"brand"`
	IsActive   string           `form:"isActive" binding:"omitempty,oneof=true false all"`
	MinPrice   *decimal.Decimal `form:"minPrice"`
	MaxPrice   *decimal.Decimal `form:"maxPrice"`
	Page       int              `form:"page"`
	Limit      int              `form:"limit"`
	SortBy     string           `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt title price sku brand"`
	SortOrder  string           `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ProductImageResponse represents one product image in API responses
type ProductImageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	AltText   string    `json:"altText,omitempty"`
	IsMain    bool      `json:"isMain"`
	SortOrder int       `json:"sortOrder"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             uuid.UUID              `json:"id"`
	SKU            string                 `json:"sku"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description,omitempty"`
	Brand          string                 `json:"brand,omitempty"`
	CategoryID     *uuid.UUID             `json:"categoryId,omitempty"`
	Category       *CategoryResponse      `json:"category,omitempty"`
	Price          decimal.Decimal        `json:"price"`
	CompareAtPrice *decimal.Decimal       `json:"compareAtPrice,omitempty"`
	IsActive       bool                   `json:"isActive"`
	MainImage      *ProductImageResponse  `json:"mainImage,omitempty"`
	Images         []ProductImageResponse `json:"images"`
	CreatedAt      string                 `json:"createdAt"`
	UpdatedAt      string                 `json:"updatedAt"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=50"`
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
	SortOrder   *int   `json:"sortOrder"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryListFilter represents the query parameters of the category listing
type CategoryListFilter struct {
	Search    string `form:"search"`
	IsActive  string `form:"isActive" binding:"omitempty,oneof=true false all"`
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=sortOrder createdAt updatedAt name code"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// formatTime normalizes timestamps to one on-the-wire format
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToProductResponse converts a domain Product to ProductResponse. The output
// field set is an explicit allow-list; internal-only fields never leave here.
func ToProductResponse(p *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Title:          p.Title,
		Description:    p.Description,
		Brand:          p.Brand,
		CategoryID:     p.CategoryID,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		IsActive:       p.IsActive,
		Images:         make([]ProductImageResponse, 0, len(p.Images)),
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}

	for i := range p.Images {
		resp.Images = append(resp.Images, toProductImageResponse(&p.Images[i]))
	}
	if main := p.MainImage(); main != nil {
		img := toProductImageResponse(main)
		resp.MainImage = &img
	}
	if p.Category != nil {
		category := ToCategoryResponse(p.Category)
		resp.Category = &category
	}
	return resp
}

// ToProductResponses converts a slice of domain Products to responses
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

func toProductImageResponse(img *catalog.ProductImage) ProductImageResponse {
	return ProductImageResponse{
		ID:        img.ID,
		URL:       img.URL,
		AltText:   img.AltText,
		IsMain:    img.IsMain,
		SortOrder: img.SortOrder,
	}
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

// ToCategoryResponses converts a slice of domain Categories to responses
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
