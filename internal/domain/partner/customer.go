package partner

import (
	"regexp"
	"time"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer represents a buyer who has ordered from a vendor's storefront.
// Order count and total spend are never stored on the customer record;
// they are derived from the customer's orders at read time so the two
// can never diverge.
type Customer struct {
	shared.VendorEntity
	Name     string `gorm:"type:varchar(200);not null"`
	Email    string `gorm:"type:varchar(200);index"`
	Phone    string `gorm:"type:varchar(50);index"`
	Location string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer for the vendor
func NewCustomer(vendorID uuid.UUID, name, email, phone, location string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	return &Customer{
		VendorEntity: shared.NewVendorEntity(vendorID),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Location:     location,
	}, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(name, email, phone, location string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Location = location
	c.UpdatedAt = time.Now()

	return nil
}

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
