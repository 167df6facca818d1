package catalog

import (
	"context"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceService handles management of a vendor's service offerings
type ServiceService struct {
	serviceRepo catalog.ServiceRepository
}

// NewServiceService creates a new ServiceService
func NewServiceService(serviceRepo catalog.ServiceRepository) *ServiceService {
	return &ServiceService{serviceRepo: serviceRepo}
}

// Create creates a new service offering
func (s *ServiceService) Create(ctx context.Context, vendorID uuid.UUID, req CreateServiceRequest) (*ServiceResponse, error) {
	service, err := catalog.NewService(vendorID, req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if req.Description != "" || req.Category != "" {
		if err := service.Update(req.Name, req.Description, req.Category, req.Price, req.DurationMinutes); err != nil {
			return nil, err
		}
	}

	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// GetByID retrieves a service owned by the vendor
func (s *ServiceService) GetByID(ctx context.Context, vendorID, serviceID uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDForVendor(ctx, vendorID, serviceID)
	if err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// List retrieves the vendor's services, newest first
func (s *ServiceService) List(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]ServiceResponse, error) {
	if filter.OrderBy == "" {
		filter = shared.DefaultFilter()
	}
	services, err := s.serviceRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	return ToServiceResponses(services), nil
}

// Update updates a service's details
func (s *ServiceService) Update(ctx context.Context, vendorID, serviceID uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDForVendor(ctx, vendorID, serviceID)
	if err != nil {
		return nil, err
	}

	name := service.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := service.Description
	if req.Description != nil {
		description = *req.Description
	}
	category := service.Category
	if req.Category != nil {
		category = *req.Category
	}
	price := service.Price
	if req.Price != nil {
		price = *req.Price
	}
	duration := service.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	if err := service.Update(name, description, category, price, duration); err != nil {
		return nil, err
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// SetActive activates or deactivates the service
func (s *ServiceService) SetActive(ctx context.Context, vendorID, serviceID uuid.UUID, active bool) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByIDForVendor(ctx, vendorID, serviceID)
	if err != nil {
		return nil, err
	}

	if active {
		service.Activate()
	} else {
		service.Deactivate()
	}
	if err := s.serviceRepo.Save(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// Delete removes a service from the vendor's catalog
func (s *ServiceService) Delete(ctx context.Context, vendorID, serviceID uuid.UUID) error {
	return s.serviceRepo.DeleteForVendor(ctx, vendorID, serviceID)
}
