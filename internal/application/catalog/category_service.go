package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// maxCategoryPageSize caps how many categories one listing page may return
const maxCategoryPageSize = 100

var categorySortColumns = map[string]string{
	"sortOrder": "sort_order",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"name":      "name",
	"code":      "code",
}

var categorySearchFields = []string{"name", "code"}

// CategoryService handles category-related business operations
type CategoryService struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories catalog.CategoryRepository, products catalog.ProductRepository) *CategoryService {
	return &CategoryService{categories: categories, products: products}
}

// List retrieves one page of categories, ordered by manual sort order by default
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, shared.PageInfo, error) {
	q := shared.ListQuery{
		SortBy:    categorySortColumns[filter.SortBy],
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
	if filter.SortBy == "" {
		q.SortOrder = "asc"
		if filter.SortOrder != "" {
			q.SortOrder = filter.SortOrder
		}
	}
	q = q.Normalize(maxCategoryPageSize)

	p := shared.Predicate{}
	switch filter.IsActive {
	case "false":
		p = p.AndEq("is_active", false)
	case "all":
	default:
		p = p.AndEq("is_active", true)
	}
	p = p.AndSearch(filter.Search, categorySearchFields...)
	q.Predicate = p

	categories, total, err := s.categories.FindPage(ctx, q)
	if err != nil {
		return nil, shared.PageInfo{}, err
	}
	return ToCategoryResponses(categories), shared.NewPageInfo(total, q.Page, q.Limit), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categories.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this code already exists")
	}

	category, err := catalog.NewCategory(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		if err := category.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update updates a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := category.Name
		if req.Name != nil {
			name = *req.Name
		}
		description := category.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := category.Update(name, description); err != nil {
			return nil, err
		}
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
		category.Touch()
	}

	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category. A category still referenced by products
// cannot be deleted.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CATEGORY_IN_USE", "Category still has products assigned to it")
	}

	return s.categories.Delete(ctx, id)
}
