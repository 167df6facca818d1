package catalog

import (
	"strings"
	"time"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// StockLevel classifies how much of the initial stock remains
type StockLevel string

const (
	StockLevelActive     StockLevel = "active"
	StockLevelLow        StockLevel = "low_stock"
	StockLevelOutOfStock StockLevel = "out_of_stock"
)

// LowStockThresholdPercent is the inclusive boundary for the low-stock
// classification: a product at exactly 30% of its initial stock is low.
const LowStockThresholdPercent = 30.0

// Product represents an item a vendor sells through their storefront.
// InitialStock is recorded once at creation and serves as the 100%
// baseline for stock-level classification.
type Product struct {
	shared.VendorEntity
	Name         string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Category     string          `gorm:"type:varchar(100);index"`
	Stock        int             `gorm:"not null;default:0"`
	InitialStock int             `gorm:"not null;default:0"`
	SKU          string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_vendor_sku,priority:2"`
	ImageURL     string          `gorm:"type:text"`
	Status       ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with the initial stock baseline
func NewProduct(vendorID uuid.UUID, name string, price decimal.Decimal, stock int, sku string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "SKU cannot be empty")
	}

	return &Product{
		VendorEntity: shared.NewVendorEntity(vendorID),
		Name:         name,
		Price:        price,
		Stock:        stock,
		InitialStock: stock,
		SKU:          strings.ToUpper(sku),
		Status:       ProductStatusActive,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description, category string, price decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if category != "" && len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}

	p.Name = name
	p.Description = description
	p.Category = category
	p.Price = price
	p.UpdatedAt = time.Now()

	return nil
}

// SetImageURL sets the product's image reference
func (p *Product) SetImageURL(url string) {
	p.ImageURL = url
	p.UpdatedAt = time.Now()
}

// AdjustStock sets the current stock quantity. Corrections above the
// initial baseline raise the baseline so the remaining percentage stays
// within 100%.
func (p *Product) AdjustStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Stock cannot be negative")
	}

	p.Stock = quantity
	if quantity > p.InitialStock {
		p.InitialStock = quantity
	}
	p.UpdatedAt = time.Now()

	return nil
}

// DeductStock reduces stock by the fulfilled quantity
func (p *Product) DeductStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantity > p.Stock {
		return shared.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.UpdatedAt = time.Now()

	return nil
}

// Activate makes the product visible in the storefront
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
}

// StockRemainingPercent returns how much of the initial stock remains,
// as a percentage. A zero initial baseline is treated as 0% remaining.
func (p *Product) StockRemainingPercent() float64 {
	if p.InitialStock == 0 {
		return 0
	}
	return float64(p.Stock) / float64(p.InitialStock) * 100
}

// StockClassification returns the stock level for the product.
// A product with zero stock is always out of stock regardless of its
// initial baseline; the 30% low-stock boundary is inclusive.
func (p *Product) StockClassification() StockLevel {
	if p.Stock == 0 {
		return StockLevelOutOfStock
	}
	if p.StockRemainingPercent() <= LowStockThresholdPercent {
		return StockLevelLow
	}
	return StockLevelActive
}

// IsLowStock reports whether the product needs restocking
func (p *Product) IsLowStock() bool {
	return p.StockClassification() == StockLevelLow
}

// IsOutOfStock reports whether the product is sold out
func (p *Product) IsOutOfStock() bool {
	return p.StockClassification() == StockLevelOutOfStock
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
