package handler

import (
	partnerapp "github.com/africommerce/backend/internal/application/partner"
	"github.com/africommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles customer management API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"omitempty,email,max=200"`
	Phone    string `json:"phone" binding:"max=50"`
	Location string `json:"location" binding:"max=200"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,email,max=200"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	Location *string `json:"location" binding:"omitempty,max=200"`
}

// Create handles POST /partner/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), vendorID, partnerapp.CreateCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetByID handles GET /partner/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), vendorID, customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// List handles GET /partner/customers
func (h *CustomerHandler) List(c *gin.Context) {
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

	customers, err := h.customerService.List(c.Request.Context(), vendorID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customers)
}

// Update handles PUT /partner/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), vendorID, customerID, partnerapp.UpdateCustomerRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Delete handles DELETE /partner/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), vendorID, customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
