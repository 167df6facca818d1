package trade

import (
	"context"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the persistence interface for orders.
// All methods are scoped by the owning vendor.
type OrderRepository interface {
	FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*Order, error)
	FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByCustomerForVendor(ctx context.Context, vendorID, customerID uuid.UUID) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error
}
