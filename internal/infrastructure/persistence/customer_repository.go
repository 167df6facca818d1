package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var customerSortable = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"location":   true,
}

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForVendor finds a customer by ID within a vendor's records
func (r *GormCustomerRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAllForVendor finds all customers for a vendor
func (r *GormCustomerRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	var customers []partner.Customer
	query := r.db.WithContext(ctx).Model(&partner.Customer{}).Where("vendor_id = ?", vendorID)
	query = applySearch(query, filter.Search, "name", "email", "phone", "location")
	query = applyFilter(query, filter, customerSortable)

	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// ExistsByEmailForVendor checks if a customer with the given email exists
// in the vendor's records.
func (r *GormCustomerRepository) ExistsByEmailForVendor(ctx context.Context, vendorID uuid.UUID, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Customer{}).
		Where("vendor_id = ? AND email = ?", vendorID, strings.ToLower(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// DeleteForVendor deletes a customer within a vendor's records
func (r *GormCustomerRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Customer{}, "vendor_id = ? AND id = ?", vendorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
