package logistics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDeliveryRepository is a mock implementation of logistics.DeliveryRepository
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*logistics.Delivery, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]logistics.Delivery, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) FindByOrderForVendor(ctx context.Context, vendorID, orderID uuid.UUID) (*logistics.Delivery, error) {
	args := m.Called(ctx, vendorID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Save(ctx context.Context, delivery *logistics.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockDeliveryRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*trade.Order, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]trade.Order, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomerForVendor(ctx context.Context, vendorID, customerID uuid.UUID) ([]trade.Order, error) {
	args := m.Called(ctx, vendorID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trade.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmailForVendor(ctx context.Context, vendorID uuid.UUID, email string) (bool, error) {
	args := m.Called(ctx, vendorID, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

func newDeliveryService() (*DeliveryService, *MockDeliveryRepository, *MockOrderRepository, *MockCustomerRepository) {
	deliveries := new(MockDeliveryRepository)
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	return NewDeliveryService(deliveries, orders, customers), deliveries, orders, customers
}

func TestDeliveryService_Create(t *testing.T) {
	vendorID := uuid.New()

	newOrder := func(t *testing.T) *trade.Order {
		t.Helper()
		order, err := trade.NewOrder(vendorID, shared.NewOrderNumber(time.Now()), uuid.New(), "Ama Serwaa", "cash")
		require.NoError(t, err)
		return order
	}

	t.Run("generates a tracking number and links the order", func(t *testing.T) {
		service, deliveries, orders, _ := newDeliveryService()

		order := newOrder(t)
		orders.On("FindByIDForVendor", mock.Anything, vendorID, order.ID).Return(order, nil)
		deliveries.On("FindByOrderForVendor", mock.Anything, vendorID, order.ID).Return(nil, shared.ErrNotFound)
		deliveries.On("Save", mock.Anything, mock.AnythingOfType("*logistics.Delivery")).Return(nil)

		resp, err := service.Create(context.Background(), vendorID, CreateDeliveryRequest{
			OrderID: order.ID,
			Address: "12 Oxford Street, Osu, Accra",
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.TrackingNumber, "TRK-"))
		assert.Equal(t, order.OrderNumber, resp.OrderNumber)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "0 mins ago", resp.CreatedAgo)
		deliveries.AssertExpectations(t)
	})

	t.Run("an order can have at most one delivery", func(t *testing.T) {
		service, deliveries, orders, _ := newDeliveryService()

		order := newOrder(t)
		existing, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), order.ID, order.CustomerID, "Ring Road, Accra")
		require.NoError(t, err)

		orders.On("FindByIDForVendor", mock.Anything, vendorID, order.ID).Return(order, nil)
		deliveries.On("FindByOrderForVendor", mock.Anything, vendorID, order.ID).Return(existing, nil)

		_, err = service.Create(context.Background(), vendorID, CreateDeliveryRequest{
			OrderID: order.ID,
			Address: "Another address",
		})

		require.Error(t, err)
		de, ok := err.(*shared.DomainError)
		require.True(t, ok)
		assert.Equal(t, "ALREADY_EXISTS", de.Code)
		deliveries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDeliveryService_Transition(t *testing.T) {
	vendorID := uuid.New()

	newDelivery := func(t *testing.T) *logistics.Delivery {
		t.Helper()
		delivery, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), uuid.New(), uuid.New(), "12 Oxford Street, Osu")
		require.NoError(t, err)
		return delivery
	}

	t.Run("completing stamps the actual delivery time", func(t *testing.T) {
		service, deliveries, orders, customers := newDeliveryService()

		delivery := newDelivery(t)
		require.NoError(t, delivery.Dispatch())

		deliveries.On("FindByIDForVendor", mock.Anything, vendorID, delivery.ID).Return(delivery, nil)
		deliveries.On("Save", mock.Anything, delivery).Return(nil)
		orders.On("FindByIDForVendor", mock.Anything, vendorID, delivery.OrderID).Return(nil, shared.ErrNotFound)
		customers.On("FindByIDForVendor", mock.Anything, vendorID, delivery.CustomerID).Return(nil, shared.ErrNotFound)

		before := time.Now()
		resp, err := service.Transition(context.Background(), vendorID, delivery.ID, logistics.DeliveryStatusDelivered)
		require.NoError(t, err)
		require.NotNil(t, resp.ActualDelivery)
		assert.False(t, resp.ActualDelivery.Before(before))
	})

	t.Run("cancelled delivery refuses further transitions", func(t *testing.T) {
		service, deliveries, _, _ := newDeliveryService()

		delivery := newDelivery(t)
		require.NoError(t, delivery.Cancel())

		deliveries.On("FindByIDForVendor", mock.Anything, vendorID, delivery.ID).Return(delivery, nil)

		_, err := service.Transition(context.Background(), vendorID, delivery.ID, logistics.DeliveryStatusInTransit)
		require.Error(t, err)
		assert.True(t, shared.IsValidationError(err))
		deliveries.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDeliveryService_List(t *testing.T) {
	vendorID := uuid.New()
	service, deliveries, orders, customers := newDeliveryService()

	order, err := trade.NewOrder(vendorID, shared.NewOrderNumber(time.Now()), uuid.New(), "Kofi Mensah", "cash")
	require.NoError(t, err)
	customer, err := partner.NewCustomer(vendorID, "Kofi Mensah", "", "", "Kumasi")
	require.NoError(t, err)
	delivery, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), order.ID, customer.ID, "Adum, Kumasi")
	require.NoError(t, err)

	deliveries.On("FindAllForVendor", mock.Anything, vendorID, mock.Anything).Return([]logistics.Delivery{*delivery}, nil)
	orders.On("FindByIDForVendor", mock.Anything, vendorID, order.ID).Return(order, nil)
	customers.On("FindByIDForVendor", mock.Anything, vendorID, customer.ID).Return(customer, nil)

	responses, err := service.List(context.Background(), vendorID, shared.Filter{})
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, order.OrderNumber, responses[0].OrderNumber)
	assert.Equal(t, "Kofi Mensah", responses[0].CustomerName)
}
