package persistence

import (
	"context"
	"errors"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var serviceSortable = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"price":            true,
	"duration_minutes": true,
	"category":         true,
}

// GormServiceRepository implements catalog.ServiceRepository using GORM
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// FindByIDForVendor finds a service by ID within a vendor's catalog
func (r *GormServiceRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Service, error) {
	var service catalog.Service
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindAllForVendor finds all services in a vendor's catalog
func (r *GormServiceRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Service, error) {
	var services []catalog.Service
	query := r.db.WithContext(ctx).Model(&catalog.Service{}).Where("vendor_id = ?", vendorID)
	query = applySearch(query, filter.Search, "name", "category")
	query = applyFilter(query, filter, serviceSortable)

	if err := query.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Save creates or updates a service
func (r *GormServiceRepository) Save(ctx context.Context, service *catalog.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

// DeleteForVendor deletes a service within a vendor's catalog
func (r *GormServiceRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Service{}, "vendor_id = ? AND id = ?", vendorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ServiceRepository = (*GormServiceRepository)(nil)
