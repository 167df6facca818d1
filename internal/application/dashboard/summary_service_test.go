package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_Compute(t *testing.T) {
	vendorID := uuid.New()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	deliveryRepo := new(MockDeliveryRepository)
	service := NewSummaryService(orderRepo, productRepo, customerRepo, deliveryRepo, insight.DefaultVIPPolicy())

	regular, err := partner.NewCustomer(vendorID, "Ama Serwaa", "", "", "Accra")
	require.NoError(t, err)
	vip, err := partner.NewCustomer(vendorID, "Kofi Mensah", "", "", "Kumasi")
	require.NoError(t, err)

	newOrder := func(customerID uuid.UUID, amount int64) trade.Order {
		order, err := trade.NewOrder(vendorID, shared.NewOrderNumber(time.Now()), customerID, "x", "cash")
		require.NoError(t, err)
		require.NoError(t, order.AddItem(trade.LineItemKindProduct, uuid.New(), "Item", 1, decimal.NewFromInt(amount)))
		return *order
	}

	pending := newOrder(regular.ID, 40)
	confirmed := newOrder(vip.ID, 600)
	require.NoError(t, confirmed.Confirm())
	delivered := newOrder(regular.ID, 80)
	require.NoError(t, delivered.Confirm())
	require.NoError(t, delivered.Deliver())

	healthy, err := catalog.NewProduct(vendorID, "Kente Scarf", decimal.NewFromInt(45), 100, "SKU-0001")
	require.NoError(t, err)
	low, err := catalog.NewProduct(vendorID, "Shea Butter", decimal.NewFromInt(15), 100, "SKU-0002")
	require.NoError(t, err)
	require.NoError(t, low.AdjustStock(20))
	empty, err := catalog.NewProduct(vendorID, "Jollof Rice Mix", decimal.NewFromInt(25), 50, "SKU-0003")
	require.NoError(t, err)
	require.NoError(t, empty.AdjustStock(0))

	pendingDrop, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), delivered.ID, regular.ID, "Osu, Accra")
	require.NoError(t, err)
	moving, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), confirmed.ID, vip.ID, "Adum, Kumasi")
	require.NoError(t, err)
	require.NoError(t, moving.Dispatch())

	orderRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]trade.Order{pending, confirmed, delivered}, nil)
	productRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]catalog.Product{*healthy, *low, *empty}, nil)
	customerRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]partner.Customer{*regular, *vip}, nil)
	deliveryRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]logistics.Delivery{*pendingDrop, *moving}, nil)

	summary, err := service.Compute(context.Background(), vendorID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalOrders)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.ConfirmedOrders)
	assert.Equal(t, 1, summary.DeliveredOrders)
	assert.Equal(t, 0, summary.CancelledOrders)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(720)))
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockProducts)
	assert.Equal(t, 1, summary.OutOfStockCount)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Equal(t, 1, summary.VIPCustomers)
	assert.Equal(t, 2, summary.ActiveDeliveries)
	assert.Equal(t, 1, summary.PendingDeliveries)
}

func TestSummaryService_Compute_GatewayFailure(t *testing.T) {
	vendorID := uuid.New()

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	deliveryRepo := new(MockDeliveryRepository)
	service := NewSummaryService(orderRepo, productRepo, customerRepo, deliveryRepo, insight.DefaultVIPPolicy())

	orderRepo.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return(nil, shared.NewDomainError("GATEWAY_ERROR", "connection refused"))

	_, err := service.Compute(context.Background(), vendorID)
	require.Error(t, err)
	productRepo.AssertNotCalled(t, "FindAllForVendor", mock.Anything, mock.Anything, mock.Anything)
}
