package catalog

import (
	"time"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest carries the fields for creating a product
type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
}

// UpdateProductRequest carries the fields for updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
}

// ProductResponse is the read model for a product, including the
// derived stock classification the management screen renders.
type ProductResponse struct {
	ID                    uuid.UUID          `json:"id"`
	Name                  string             `json:"name"`
	Description           string             `json:"description,omitempty"`
	Category              string             `json:"category,omitempty"`
	Price                 decimal.Decimal    `json:"price"`
	Stock                 int                `json:"stock"`
	InitialStock          int                `json:"initial_stock"`
	SKU                   string             `json:"sku"`
	ImageURL              string             `json:"image_url,omitempty"`
	Status                string             `json:"status"`
	StockLevel            catalog.StockLevel `json:"stock_level"`
	StockRemainingPercent float64            `json:"stock_remaining_percent"`
	CreatedAt             time.Time          `json:"created_at"`
}

// ToProductResponse converts a product to its read model
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		Category:              p.Category,
		Price:                 p.Price,
		Stock:                 p.Stock,
		InitialStock:          p.InitialStock,
		SKU:                   p.SKU,
		ImageURL:              p.ImageURL,
		Status:                string(p.Status),
		StockLevel:            p.StockClassification(),
		StockRemainingPercent: p.StockRemainingPercent(),
		CreatedAt:             p.CreatedAt,
	}
}

// ToProductResponses converts a product slice to read models
func ToProductResponses(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

// CreateServiceRequest carries the fields for creating a service
type CreateServiceRequest struct {
	Name            string
	Description     string
	Category        string
	Price           decimal.Decimal
	DurationMinutes int
}

// UpdateServiceRequest carries the fields for updating a service.
// Nil fields are left unchanged.
type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	Category        *string
	Price           *decimal.Decimal
	DurationMinutes *int
}

// ServiceResponse is the read model for a service offering
type ServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToServiceResponse converts a service to its read model
func ToServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
	}
}

// ToServiceResponses converts a service slice to read models
func ToServiceResponses(services []catalog.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}
