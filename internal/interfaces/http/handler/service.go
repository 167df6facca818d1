package handler

import (
	catalogapp "github.com/africommerce/backend/internal/application/catalog"
	"github.com/africommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServiceHandler handles service offering API endpoints
type ServiceHandler struct {
	BaseHandler
	serviceService *catalogapp.ServiceService
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceService *catalogapp.ServiceService) *ServiceHandler {
	return &ServiceHandler{serviceService: serviceService}
}

// CreateServiceRequest represents a request to create a new service offering
type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required,min=1,max=200"`
	Description     string  `json:"description" binding:"max=1000"`
	Category        string  `json:"category" binding:"max=100"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
}

// UpdateServiceRequest represents a request to update a service offering
type UpdateServiceRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string  `json:"description" binding:"omitempty,max=1000"`
	Category        *string  `json:"category" binding:"omitempty,max=100"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
}

// SetServiceActiveRequest represents a request to toggle a service's availability
type SetServiceActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// Create handles POST /catalog/services
func (h *ServiceHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	service, err := h.serviceService.Create(c.Request.Context(), vendorID, catalogapp.CreateServiceRequest{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Price:           toDecimal(req.Price),
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, service)
}

// GetByID handles GET /catalog/services/:id
func (h *ServiceHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	service, err := h.serviceService.GetByID(c.Request.Context(), vendorID, serviceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, service)
}

// List handles GET /catalog/services
func (h *ServiceHandler) List(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	services, err := h.serviceService.List(c.Request.Context(), vendorID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, services)
}

// Update handles PUT /catalog/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.UpdateServiceRequest{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
	}
	if req.Price != nil {
		appReq.Price = toDecimalPtr(*req.Price)
	}

	service, err := h.serviceService.Update(c.Request.Context(), vendorID, serviceID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, service)
}

// SetActive handles PATCH /catalog/services/:id/active
func (h *ServiceHandler) SetActive(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	var req SetServiceActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	service, err := h.serviceService.SetActive(c.Request.Context(), vendorID, serviceID, *req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, service)
}

// Delete handles DELETE /catalog/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid service ID format")
		return
	}

	if err := h.serviceService.Delete(c.Request.Context(), vendorID, serviceID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
