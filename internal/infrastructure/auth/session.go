package auth

import (
	"context"

	"github.com/africommerce/backend/internal/infrastructure/logger"
	appsync "github.com/africommerce/backend/internal/sync"
	"github.com/google/uuid"
)

// ContextSessionProvider resolves the authenticated vendor from the
// request context the JWT middleware populated. Requests without a
// valid session resolve to no vendor, which downstream synchronizers
// treat as a no-op.
type ContextSessionProvider struct{}

// NewContextSessionProvider creates a new ContextSessionProvider
func NewContextSessionProvider() *ContextSessionProvider {
	return &ContextSessionProvider{}
}

// VendorID returns the authenticated vendor ID, if any
func (p *ContextSessionProvider) VendorID(ctx context.Context) (uuid.UUID, bool) {
	raw := logger.GetVendorID(ctx)
	if raw == "" {
		return uuid.Nil, false
	}
	vendorID, err := uuid.Parse(raw)
	if err != nil || vendorID == uuid.Nil {
		return uuid.Nil, false
	}
	return vendorID, true
}

var _ appsync.SessionProvider = (*ContextSessionProvider)(nil)
