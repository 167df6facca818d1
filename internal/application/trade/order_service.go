package trade

import (
	"context"
	"time"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService handles order management for a vendor. Line items
// resolve their name and price from the vendor's catalog at creation
// time; confirming an order deducts product stock by line quantity.
type OrderService struct {
	orderRepo    trade.OrderRepository
	productRepo  catalog.ProductRepository
	serviceRepo  catalog.ServiceRepository
	customerRepo partner.CustomerRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, serviceRepo catalog.ServiceRepository, customerRepo partner.CustomerRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a new pending order for one of the vendor's customers
func (s *OrderService) Create(ctx context.Context, vendorID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must have at least one item")
	}

	customer, err := s.customerRepo.FindByIDForVendor(ctx, vendorID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewOrder(vendorID, shared.NewOrderNumber(time.Now()), customer.ID, customer.Name, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		switch trade.LineItemKind(item.Kind) {
		case trade.LineItemKindProduct:
			product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, item.ItemID)
			if err != nil {
				return nil, err
			}
			if item.Quantity > product.Stock {
				return nil, shared.ErrInsufficientStock
			}
			if err := order.AddItem(trade.LineItemKindProduct, product.ID, product.Name, item.Quantity, product.Price); err != nil {
				return nil, err
			}
		case trade.LineItemKindService:
			service, err := s.serviceRepo.FindByIDForVendor(ctx, vendorID, item.ItemID)
			if err != nil {
				return nil, err
			}
			if err := order.AddItem(trade.LineItemKindService, service.ID, service.Name, item.Quantity, service.Price); err != nil {
				return nil, err
			}
		default:
			return nil, shared.NewDomainError("INVALID_INPUT", "Line item kind must be 'product' or 'service'")
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order owned by the vendor
func (s *OrderService) GetByID(ctx context.Context, vendorID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves the vendor's orders, newest first
func (s *OrderService) List(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]OrderResponse, error) {
	if filter.OrderBy == "" {
		filter = shared.DefaultFilter()
	}
	orders, err := s.orderRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Transition moves an order to the target status. Confirming deducts
// product stock for each product line; transitioning to delivered
// stamps the delivery timestamp at transition time.
func (s *OrderService) Transition(ctx context.Context, vendorID, orderID uuid.UUID, target trade.OrderStatus) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForVendor(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}

	confirming := target == trade.OrderStatusConfirmed && order.IsPending()

	if err := order.Transition(target); err != nil {
		return nil, err
	}

	if confirming {
		if err := s.deductStock(ctx, vendorID, order); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// Delete removes an order from the vendor's records
func (s *OrderService) Delete(ctx context.Context, vendorID, orderID uuid.UUID) error {
	return s.orderRepo.DeleteForVendor(ctx, vendorID, orderID)
}

// deductStock applies every product line's deduction in memory first
// and only then persists, so a line that fails the stock check leaves
// no earlier line half-deducted in the database.
func (s *OrderService) deductStock(ctx context.Context, vendorID uuid.UUID, order *trade.Order) error {
	products := make([]*catalog.Product, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Kind != trade.LineItemKindProduct {
			continue
		}
		product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, item.ItemID)
		if err != nil {
			return err
		}
		if err := product.DeductStock(item.Quantity); err != nil {
			return err
		}
		products = append(products, product)
	}

	for _, product := range products {
		if err := s.productRepo.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
