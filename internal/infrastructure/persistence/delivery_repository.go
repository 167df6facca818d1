package persistence

import (
	"context"
	"errors"

	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var deliverySortable = map[string]bool{
	"created_at":        true,
	"updated_at":        true,
	"tracking_number":   true,
	"status":            true,
	"estimated_arrival": true,
}

// GormDeliveryRepository implements logistics.DeliveryRepository using GORM
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// FindByIDForVendor finds a delivery by ID within a vendor's records
func (r *GormDeliveryRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*logistics.Delivery, error) {
	var delivery logistics.Delivery
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// FindAllForVendor finds all deliveries for a vendor
func (r *GormDeliveryRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]logistics.Delivery, error) {
	var deliveries []logistics.Delivery
	query := r.db.WithContext(ctx).Model(&logistics.Delivery{}).Where("vendor_id = ?", vendorID)
	query = applySearch(query, filter.Search, "tracking_number", "address", "driver_name")
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applyFilter(query, filter, deliverySortable)

	if err := query.Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

// FindByOrderForVendor finds the delivery attached to an order, if any
func (r *GormDeliveryRepository) FindByOrderForVendor(ctx context.Context, vendorID, orderID uuid.UUID) (*logistics.Delivery, error) {
	var delivery logistics.Delivery
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND order_id = ?", vendorID, orderID).
		First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &delivery, nil
}

// Save creates or updates a delivery
func (r *GormDeliveryRepository) Save(ctx context.Context, delivery *logistics.Delivery) error {
	return r.db.WithContext(ctx).Save(delivery).Error
}

// DeleteForVendor deletes a delivery within a vendor's records
func (r *GormDeliveryRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&logistics.Delivery{}, "vendor_id = ? AND id = ?", vendorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ logistics.DeliveryRepository = (*GormDeliveryRepository)(nil)
