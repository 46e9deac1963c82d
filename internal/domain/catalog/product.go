package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// Product represents a sellable item in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseEntity
	SKU            string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title          string           `gorm:"type:varchar(200);not null"`
	Description    string           `gorm:"type:text"`
	Brand          string           `gorm:"type:varchar(100);index"`
	CategoryID     *uuid.UUID       `gorm:"type:uuid;index"`
	Category       *Category        `gorm:"foreignKey:CategoryID"`
	Price          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CompareAtPrice *decimal.Decimal `gorm:"type:decimal(18,4)"`
	IsActive       bool             `gorm:"not null;default:true;index"`
	Images         []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	DeletedAt      gorm.DeletedAt   `gorm:"index"`
}

// ProductImage is a child entity of Product. Images are persisted through
// the product aggregate and ordered by SortOrder.
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	AltText   string    `gorm:"type:varchar(200)"`
	IsMain    bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// NewProduct creates a new active product
func NewProduct(sku, title string, price decimal.Decimal) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.ToUpper(strings.TrimSpace(sku)),
		Title:      strings.TrimSpace(title),
		Price:      price,
		IsActive:   true,
	}, nil
}

// Update changes the product's basic information
func (p *Product) Update(title, description, brand string) error {
	if err := validateTitle(title); err != nil {
		return err
	}

	p.Title = strings.TrimSpace(title)
	p.Description = description
	p.Brand = brand
	p.Touch()
	return nil
}

// SetPrice changes the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetCompareAtPrice sets the strike-through price; nil clears it
func (p *Product) SetCompareAtPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Compare-at price cannot be negative")
	}
	p.CompareAtPrice = price
	p.Touch()
	return nil
}

// SetCategory assigns the product to a category; nil detaches it
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.Touch()
}

// Activate makes the product visible in default listings
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate hides the product from default listings
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// ReplaceImages swaps the product's image set, normalizing sort order
func (p *Product) ReplaceImages(images []ProductImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].SortOrder < images[j].SortOrder
	})
	for i := range images {
		if images[i].ID == uuid.Nil {
			images[i].BaseEntity = shared.NewBaseEntity()
		}
		images[i].ProductID = p.ID
		images[i].SortOrder = i
	}
	p.Images = images
	p.Touch()
}

// MainImage returns the image flagged as main, falling back to the first
// image in sort order. The result is deterministic for an unchanged image
// set. Returns nil when the product has no images.
func (p *Product) MainImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	best := 0
	for i := range p.Images {
		if p.Images[i].IsMain {
			return &p.Images[i]
		}
		if p.Images[i].SortOrder < p.Images[best].SortOrder {
			best = i
		}
	}
	return &p.Images[best]
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}
