package logistics

import (
	"context"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DeliveryRepository defines the persistence interface for deliveries.
// All methods are scoped by the owning vendor.
type DeliveryRepository interface {
	FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*Delivery, error)
	FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Delivery, error)
	FindByOrderForVendor(ctx context.Context, vendorID, orderID uuid.UUID) (*Delivery, error)
	Save(ctx context.Context, delivery *Delivery) error
	DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error
}
