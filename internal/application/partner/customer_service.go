package partner

import (
	"context"

	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// CustomerService handles customer management. Derived aggregates
// (order count, total spend, VIP flag) are computed from the vendor's
// order collection on every read so they can never drift from it.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	orderRepo    trade.OrderRepository
	vipPolicy    insight.VIPPolicy
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository, orderRepo trade.OrderRepository, vipPolicy insight.VIPPolicy) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		vipPolicy:    vipPolicy,
	}
}

// Create creates a new customer for the vendor
func (s *CustomerService) Create(ctx context.Context, vendorID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	if req.Email != "" {
		exists, err := s.customerRepo.ExistsByEmailForVendor(ctx, vendorID, req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this email already exists")
		}
	}

	customer, err := partner.NewCustomer(vendorID, req.Name, req.Email, req.Phone, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer, insight.CustomerStats{}, s.vipPolicy)
	return &response, nil
}

// GetByID retrieves a customer with their derived order aggregates
func (s *CustomerService) GetByID(ctx context.Context, vendorID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForVendor(ctx, vendorID, customerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByCustomerForVendor(ctx, vendorID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer, insight.StatsFor(customerID, orders), s.vipPolicy)
	return &response, nil
}

// List retrieves the vendor's customers with derived aggregates
// computed over one order snapshot, so every row's stats are
// consistent with the same point in time.
func (s *CustomerService) List(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]CustomerResponse, error) {
	if filter.OrderBy == "" {
		filter = shared.DefaultFilter()
	}
	customers, err := s.customerRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}

	// The customer list may be paginated, but the stats behind each row
	// must cover the vendor's entire order history or VIP classification
	// drifts with the page size.
	orders, err := s.orderRepo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		stats := insight.StatsFor(customers[i].ID, orders)
		responses[i] = ToCustomerResponse(&customers[i], stats, s.vipPolicy)
	}
	return responses, nil
}

// Update updates a customer's contact details
func (s *CustomerService) Update(ctx context.Context, vendorID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForVendor(ctx, vendorID, customerID)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	if req.Name != nil {
		name = *req.Name
	}
	email := customer.Email
	if req.Email != nil {
		email = *req.Email
	}
	phone := customer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	location := customer.Location
	if req.Location != nil {
		location = *req.Location
	}

	if err := customer.Update(name, email, phone, location); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByCustomerForVendor(ctx, vendorID, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer, insight.StatsFor(customerID, orders), s.vipPolicy)
	return &response, nil
}

// Delete removes a customer from the vendor's records
func (s *CustomerService) Delete(ctx context.Context, vendorID, customerID uuid.UUID) error {
	return s.customerRepo.DeleteForVendor(ctx, vendorID, customerID)
}
