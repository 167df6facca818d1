package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/africommerce/backend/internal/sync"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticSession struct {
	vendorID uuid.UUID
}

func (s staticSession) VendorID(ctx context.Context) (uuid.UUID, bool) {
	return s.vendorID, s.vendorID != uuid.Nil
}

func newWorkspaceMocks() (orderRepo *MockOrderRepository, productRepo *MockProductRepository, serviceRepo *MockServiceRepository, customerRepo *MockCustomerRepository, deliveryRepo *MockDeliveryRepository) {
	return new(MockOrderRepository), new(MockProductRepository), new(MockServiceRepository), new(MockCustomerRepository), new(MockDeliveryRepository)
}

func TestWorkspace_RefreshAll(t *testing.T) {
	vendorID := uuid.New()
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	order, err := trade.NewOrder(vendorID, shared.NewOrderNumber(time.Now()), uuid.New(), "Ama Serwaa", "cash")
	require.NoError(t, err)

	orderRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]trade.Order{*order}, nil)
	productRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]catalog.Product{}, nil)
	serviceRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]catalog.Service{}, nil)
	customerRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return(nil, nil)
	deliveryRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return(nil, nil)

	ws := NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, staticSession{vendorID}, nil)
	ws.RefreshAll(context.Background())

	assert.Equal(t, sync.StatusReady, ws.Orders.Status())
	assert.Equal(t, sync.StatusReady, ws.Deliveries.Status())
	assert.Len(t, ws.Orders.Items(), 1)
}

func TestWorkspace_MutationRefreshesCollection(t *testing.T) {
	vendorID := uuid.New()
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	product, err := catalog.NewProduct(vendorID, "Kente Scarf", decimal.NewFromInt(45), 20, "SKU-0001")
	require.NoError(t, err)

	productRepo.On("Save", mock.Anything, product).Return(nil)
	productRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]catalog.Product{*product}, nil)

	ws := NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, staticSession{vendorID}, nil)

	outcome := ws.Products.Create(context.Background(), product, "Product created")
	require.True(t, outcome.Succeeded())
	assert.Len(t, ws.Products.Items(), 1)
	productRepo.AssertExpectations(t)
}

func TestWorkspace_NoSessionMakesNoCalls(t *testing.T) {
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	ws := NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, staticSession{}, nil)
	ws.RefreshAll(context.Background())

	assert.Equal(t, sync.StatusIdle, ws.Orders.Status())
	orderRepo.AssertNotCalled(t, "FindAllForVendor", mock.Anything, mock.Anything, mock.Anything)
}

type ctxKey string

const ctxVendorKey ctxKey = "vendor"

// ctxSession resolves the vendor from the request context, the way the
// JWT-backed provider does in production.
type ctxSession struct{}

func (ctxSession) VendorID(ctx context.Context) (uuid.UUID, bool) {
	vendorID, ok := ctx.Value(ctxVendorKey).(uuid.UUID)
	return vendorID, ok && vendorID != uuid.Nil
}

func vendorContext(vendorID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), ctxVendorKey, vendorID)
}

func TestWorkspaceHub_VendorIsolation(t *testing.T) {
	vendorA := uuid.New()
	vendorB := uuid.New()
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	order, err := trade.NewOrder(vendorA, shared.NewOrderNumber(time.Now()), uuid.New(), "Ama Serwaa", "cash")
	require.NoError(t, err)
	orderRepo.On("FindAllForVendor", mock.Anything, vendorA, mock.Anything).Return([]trade.Order{*order}, nil)

	hub := NewWorkspaceHub(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, ctxSession{}, nil)
	t.Cleanup(hub.Close)

	outcome := hub.ForVendor(vendorA).Orders.Refresh(vendorContext(vendorA))
	require.True(t, outcome.Succeeded())

	t.Run("one vendor's refresh never reaches another vendor's screens", func(t *testing.T) {
		assert.Empty(t, hub.ForVendor(vendorB).Orders.Items())
		assert.Equal(t, sync.StatusIdle, hub.ForVendor(vendorB).Orders.Status())

		items := hub.ForVendor(vendorA).Orders.Items()
		require.Len(t, items, 1)
		assert.Equal(t, vendorA, items[0].VendorID)
	})

	t.Run("the same vendor always gets the same workspace", func(t *testing.T) {
		assert.Same(t, hub.ForVendor(vendorA), hub.ForVendor(vendorA))
		assert.NotSame(t, hub.ForVendor(vendorA), hub.ForVendor(vendorB))
	})

	t.Run("close stops handed-out workspaces", func(t *testing.T) {
		ws := hub.ForVendor(vendorA)
		hub.Close()

		outcome := ws.Orders.Refresh(vendorContext(vendorA))
		assert.False(t, outcome.Succeeded())
	})
}

func TestWorkspace_RefreshLoadsAllRecords(t *testing.T) {
	vendorID := uuid.New()
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	// Screens render the whole collection, so the refresh must not be
	// capped at one page.
	orderRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 0 && f.PageSize == 0
	})).Return([]trade.Order{}, nil)

	ws := NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, staticSession{vendorID}, nil)

	outcome := ws.Orders.Refresh(context.Background())
	require.True(t, outcome.Succeeded())
	orderRepo.AssertExpectations(t)
}

func TestWorkspace_CloseStopsAllScreens(t *testing.T) {
	vendorID := uuid.New()
	orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo := newWorkspaceMocks()

	ws := NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, staticSession{vendorID}, nil)
	ws.Close()

	outcome := ws.Orders.Refresh(context.Background())
	assert.False(t, outcome.Succeeded())
	orderRepo.AssertNotCalled(t, "FindAllForVendor", mock.Anything, mock.Anything, mock.Anything)
}
