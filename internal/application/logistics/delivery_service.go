package logistics

import (
	"context"

	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// DeliveryService handles shipment management. Each delivery references
// exactly one order and one customer; list reads join the order number
// and customer name so the screen renders without further lookups.
type DeliveryService struct {
	deliveryRepo logistics.DeliveryRepository
	orderRepo    trade.OrderRepository
	customerRepo partner.CustomerRepository
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(deliveryRepo logistics.DeliveryRepository, orderRepo trade.OrderRepository, customerRepo partner.CustomerRepository) *DeliveryService {
	return &DeliveryService{
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a delivery for one of the vendor's orders. The
// tracking number is generated here and never changes afterwards.
func (s *DeliveryService) Create(ctx context.Context, vendorID uuid.UUID, req CreateDeliveryRequest) (*DeliveryResponse, error) {
	order, err := s.orderRepo.FindByIDForVendor(ctx, vendorID, req.OrderID)
	if err != nil {
		return nil, err
	}

	existing, err := s.deliveryRepo.FindByOrderForVendor(ctx, vendorID, order.ID)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Order already has a delivery")
	}

	delivery, err := logistics.NewDelivery(vendorID, shared.NewTrackingNumber(), order.ID, order.CustomerID, req.Address)
	if err != nil {
		return nil, err
	}
	if req.DriverName != "" || req.DriverPhone != "" {
		if err := delivery.AssignDriver(req.DriverName, req.DriverPhone); err != nil {
			return nil, err
		}
	}
	if req.EstimatedArrival != nil {
		delivery.SetEstimatedArrival(*req.EstimatedArrival)
	}
	if req.Notes != "" {
		delivery.SetNotes(req.Notes)
	}

	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	response := ToDeliveryResponse(delivery, order.OrderNumber, order.CustomerName)
	return &response, nil
}

// GetByID retrieves a delivery joined with its order and customer
func (s *DeliveryService) GetByID(ctx context.Context, vendorID, deliveryID uuid.UUID) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForVendor(ctx, vendorID, deliveryID)
	if err != nil {
		return nil, err
	}

	response := s.joined(ctx, vendorID, delivery)
	return &response, nil
}

// List retrieves the vendor's deliveries, newest first, joined with
// order numbers and customer names.
func (s *DeliveryService) List(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]DeliveryResponse, error) {
	if filter.OrderBy == "" {
		filter = shared.DefaultFilter()
	}
	deliveries, err := s.deliveryRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		responses[i] = s.joined(ctx, vendorID, &deliveries[i])
	}
	return responses, nil
}

// Update updates the mutable delivery fields
func (s *DeliveryService) Update(ctx context.Context, vendorID, deliveryID uuid.UUID, req UpdateDeliveryRequest) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForVendor(ctx, vendorID, deliveryID)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		if *req.Address == "" {
			return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
		}
		delivery.Address = *req.Address
	}
	if req.DriverName != nil || req.DriverPhone != nil {
		name := delivery.DriverName
		if req.DriverName != nil {
			name = *req.DriverName
		}
		phone := delivery.DriverPhone
		if req.DriverPhone != nil {
			phone = *req.DriverPhone
		}
		if err := delivery.AssignDriver(name, phone); err != nil {
			return nil, err
		}
	}
	if req.EstimatedArrival != nil {
		delivery.SetEstimatedArrival(*req.EstimatedArrival)
	}
	if req.Notes != nil {
		delivery.SetNotes(*req.Notes)
	}

	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	response := s.joined(ctx, vendorID, delivery)
	return &response, nil
}

// Transition moves a delivery to the target status. Arriving at
// delivered stamps the actual delivery time at transition time.
func (s *DeliveryService) Transition(ctx context.Context, vendorID, deliveryID uuid.UUID, target logistics.DeliveryStatus) (*DeliveryResponse, error) {
	delivery, err := s.deliveryRepo.FindByIDForVendor(ctx, vendorID, deliveryID)
	if err != nil {
		return nil, err
	}

	if err := delivery.Transition(target); err != nil {
		return nil, err
	}

	if err := s.deliveryRepo.Save(ctx, delivery); err != nil {
		return nil, err
	}

	response := s.joined(ctx, vendorID, delivery)
	return &response, nil
}

// Delete removes a delivery from the vendor's records
func (s *DeliveryService) Delete(ctx context.Context, vendorID, deliveryID uuid.UUID) error {
	return s.deliveryRepo.DeleteForVendor(ctx, vendorID, deliveryID)
}

// joined decorates the delivery with its order number and customer
// name. Lookup failures degrade to blank display fields rather than
// failing the read.
func (s *DeliveryService) joined(ctx context.Context, vendorID uuid.UUID, delivery *logistics.Delivery) DeliveryResponse {
	var orderNumber, customerName string
	if order, err := s.orderRepo.FindByIDForVendor(ctx, vendorID, delivery.OrderID); err == nil {
		orderNumber = order.OrderNumber
	}
	if customer, err := s.customerRepo.FindByIDForVendor(ctx, vendorID, delivery.CustomerID); err == nil {
		customerName = customer.Name
	}
	return ToDeliveryResponse(delivery, orderNumber, customerName)
}
