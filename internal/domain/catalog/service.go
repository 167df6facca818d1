package catalog

import (
	"time"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceStatus represents the status of a service offering
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service represents a bookable service a vendor offers, such as a
// haircut or a delivery run, priced per session of a fixed duration.
type Service struct {
	shared.VendorEntity
	Name            string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	Category        string          `gorm:"type:varchar(100);index"`
	Price           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DurationMinutes int             `gorm:"not null;default:0"`
	Status          ServiceStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Service) TableName() string {
	return "services"
}

// NewService creates a new service offering
func NewService(vendorID uuid.UUID, name string, price decimal.Decimal, durationMinutes int) (*Service, error) {
	if err := validateServiceName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if durationMinutes < 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration cannot be negative")
	}

	return &Service{
		VendorEntity:    shared.NewVendorEntity(vendorID),
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
		Status:          ServiceStatusActive,
	}, nil
}

// Update updates the service's details
func (s *Service) Update(name, description, category string, price decimal.Decimal, durationMinutes int) error {
	if err := validateServiceName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if durationMinutes < 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration cannot be negative")
	}
	if category != "" && len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}

	s.Name = name
	s.Description = description
	s.Category = category
	s.Price = price
	s.DurationMinutes = durationMinutes
	s.UpdatedAt = time.Now()

	return nil
}

// Activate makes the service bookable
func (s *Service) Activate() {
	s.Status = ServiceStatusActive
	s.UpdatedAt = time.Now()
}

// Deactivate stops the service from being bookable
func (s *Service) Deactivate() {
	s.Status = ServiceStatusInactive
	s.UpdatedAt = time.Now()
}

// IsActive reports whether the service is bookable
func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}

func validateServiceName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Service name cannot exceed 200 characters")
	}
	return nil
}
