package catalog

import (
	"context"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products.
// Every method is scoped by the owning vendor; cross-vendor access is a
// correctness violation and must surface as ErrNotFound.
type ProductRepository interface {
	FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*Product, error)
	FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Product, error)
	CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)
	Save(ctx context.Context, product *Product) error
	DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error
}

// ServiceRepository defines the persistence interface for service offerings
type ServiceRepository interface {
	FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*Service, error)
	FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Service, error)
	Save(ctx context.Context, service *Service) error
	DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error
}
