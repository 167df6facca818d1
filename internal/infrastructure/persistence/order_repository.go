package persistence

import (
	"context"
	"errors"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var orderSortable = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"status":       true,
	"total_amount": true,
}

// GormOrderRepository implements trade.OrderRepository using GORM.
// Orders are loaded with their line items; saving an order writes the
// items through the association in the same operation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByIDForVendor finds an order by ID within a vendor's records
func (r *GormOrderRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAllForVendor finds all orders for a vendor
func (r *GormOrderRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.db.WithContext(ctx).Model(&trade.Order{}).
		Preload("Items").
		Where("vendor_id = ?", vendorID)
	query = applySearch(query, filter.Search, "order_number", "customer_name")
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	query = applyFilter(query, filter, orderSortable)

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByCustomerForVendor finds a customer's orders within a vendor's records
func (r *GormOrderRepository) FindByCustomerForVendor(ctx context.Context, vendorID, customerID uuid.UUID) ([]trade.Order, error) {
	var orders []trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("vendor_id = ? AND customer_id = ?", vendorID, customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order together with its line items
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Removed lines must not linger, so replace the item set wholesale.
		if err := tx.Where("order_id = ?", order.ID).Delete(&trade.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
	})
}

// DeleteForVendor deletes an order and its line items within a vendor's records
func (r *GormOrderRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Select(clause.Associations).Delete(&trade.Order{}, "vendor_id = ? AND id = ?", vendorID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("order_id = ?", id).Delete(&trade.OrderItem{}).Error
	})
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
