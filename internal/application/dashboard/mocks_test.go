package dashboard

import (
	"context"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

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

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

// MockServiceRepository is a mock implementation of catalog.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Service, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Service, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Service), args.Error(1)
}

func (m *MockServiceRepository) Save(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
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
