package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// maxProductPageSize caps how many products one listing page may return
const maxProductPageSize = 100

// productSortColumns maps API sort keys to store columns. Anything outside
// this map falls back to the default sort.
var productSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"price":     "price",
	"sku":       "sku",
	"brand":     "brand",
}

// productSearchFields are the columns free-text search runs over
var productSearchFields = []string{"title", "description", "sku"}

// ProductService handles product-related business operations
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository, categories catalog.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// List retrieves one page of products. Listings show active products unless
// the caller overrides the visibility filter.
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, shared.PageInfo, error) {
	q := shared.ListQuery{
		SortBy:    productSortColumns[filter.SortBy],
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}.Normalize(maxProductPageSize)

	p := shared.Predicate{}
	switch filter.IsActive {
	case "false":
		p = p.AndEq("is_active", false)
	case "all":
		// no visibility constraint
	default:
		p = p.AndEq("is_active", true)
	}
	if filter.CategoryID != nil {
		p = p.AndEq("category_id", *filter.CategoryID)
	}
	if filter.Brand != "" {
		p = p.AndEq("brand", filter.Brand)
	}
	if filter.MinPrice != nil {
		p = p.AndCompare("price", shared.CompareGTE, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		p = p.AndCompare("price", shared.CompareLTE, *filter.MaxPrice)
	}
	p = p.AndSearch(filter.Search, productSearchFields...)
	q.Predicate = p

	products, total, err := s.products.FindPage(ctx, q)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}
	return ToProductResponses(products), shared.NewPageInfo(total, q.Page, q.Limit), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.products.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	if req.CategoryID != nil {
		if err := s.ensureCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.SKU, req.Title, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" || req.Brand != "" {
		if err := product.Update(req.Title, req.Description, req.Brand); err != nil {
			return nil, err
		}
	}
	if req.CompareAtPrice != nil {
		if err := product.SetCompareAtPrice(req.CompareAtPrice); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if req.IsActive != nil && !*req.IsActive {
		product.Deactivate()
	}
	if len(req.Images) > 0 {
		product.ReplaceImages(toDomainImages(req.Images))
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Update updates a product. Absent fields keep their current value.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil || req.Brand != nil {
		title := product.Title
		if req.Title != nil {
			title = *req.Title
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		brand := product.Brand
		if req.Brand != nil {
			brand = *req.Brand
		}
		if err := product.Update(title, description, brand); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.CompareAtPrice != nil {
		if err := product.SetCompareAtPrice(req.CompareAtPrice); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		if err := s.ensureCategoryExists(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}
	if req.Images != nil {
		product.ReplaceImages(toDomainImages(*req.Images))
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a single product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.DeleteBatch(ctx, []uuid.UUID{id})
}

// BulkDelete removes a batch of products atomically. If any ID is unknown
// the whole batch fails and nothing is deleted.
func (s *ProductService) BulkDelete(ctx context.Context, req BulkDeleteProductsRequest) error {
	return s.products.DeleteBatch(ctx, req.IDs)
}

func (s *ProductService) ensureCategoryExists(ctx context.Context, id uuid.UUID) error {
	_, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("INVALID_CATEGORY", "Category not found")
	}
	return err
}

func toDomainImages(inputs []ProductImageInput) []catalog.ProductImage {
	images := make([]catalog.ProductImage, len(inputs))
	for i, in := range inputs {
		images[i] = catalog.ProductImage{
			URL:       in.URL,
			AltText:   in.AltText,
			IsMain:    in.IsMain,
			SortOrder: in.SortOrder,
		}
	}
	return images
}
