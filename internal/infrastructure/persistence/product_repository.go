package persistence

import (
	"context"
	"errors"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var productSortable = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"price":      true,
	"stock":      true,
	"category":   true,
}

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForVendor finds a product by ID within a vendor's catalog
func (r *GormProductRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAllForVendor finds all products in a vendor's catalog
func (r *GormProductRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("vendor_id = ?", vendorID)
	query = applySearch(query, filter.Search, "name", "sku", "category")
	query = applyFilter(query, filter, productSortable)

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountForVendor counts the products in a vendor's catalog
func (r *GormProductRepository) CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteForVendor deletes a product within a vendor's catalog
func (r *GormProductRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "vendor_id = ? AND id = ?", vendorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
