package partner

import (
	"context"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the persistence interface for customers.
// All methods are scoped by the owning vendor.
type CustomerRepository interface {
	FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*Customer, error)
	FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Customer, error)
	ExistsByEmailForVendor(ctx context.Context, vendorID uuid.UUID, email string) (bool, error)
	Save(ctx context.Context, customer *Customer) error
	DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error
}
