package handler

import (
	"time"

	logisticsapp "github.com/africommerce/backend/internal/application/logistics"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeliveryHandler handles delivery management API endpoints
type DeliveryHandler struct {
	BaseHandler
	deliveryService *logisticsapp.DeliveryService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(deliveryService *logisticsapp.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// CreateDeliveryRequest represents a request to create a delivery for an order
type CreateDeliveryRequest struct {
	OrderID          string     `json:"order_id" binding:"required,uuid"`
	Address          string     `json:"address" binding:"required,min=1,max=500"`
	DriverName       string     `json:"driver_name" binding:"max=100"`
	DriverPhone      string     `json:"driver_phone" binding:"max=50"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	Notes            string     `json:"notes" binding:"max=1000"`
}

// UpdateDeliveryRequest represents a request to update a delivery
type UpdateDeliveryRequest struct {
	Address          *string    `json:"address" binding:"omitempty,min=1,max=500"`
	DriverName       *string    `json:"driver_name" binding:"omitempty,max=100"`
	DriverPhone      *string    `json:"driver_phone" binding:"omitempty,max=50"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
	Notes            *string    `json:"notes" binding:"omitempty,max=1000"`
}

// TransitionDeliveryRequest represents a request to move a delivery to a new status
type TransitionDeliveryRequest struct {
	Status string `json:"status" binding:"required,oneof=in_transit delivered cancelled"`
}

// Create handles POST /logistics/deliveries
func (h *DeliveryHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	delivery, err := h.deliveryService.Create(c.Request.Context(), vendorID, logisticsapp.CreateDeliveryRequest{
		OrderID:          orderID,
		Address:          req.Address,
		DriverName:       req.DriverName,
		DriverPhone:      req.DriverPhone,
		EstimatedArrival: req.EstimatedArrival,
		Notes:            req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, delivery)
}

// GetByID handles GET /logistics/deliveries/:id
func (h *DeliveryHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid delivery ID format")
		return
	}

	delivery, err := h.deliveryService.GetByID(c.Request.Context(), vendorID, deliveryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// List handles GET /logistics/deliveries
func (h *DeliveryHandler) List(c *gin.Context) {
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

	deliveries, err := h.deliveryService.List(c.Request.Context(), vendorID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, deliveries)
}

// Update handles PUT /logistics/deliveries/:id
func (h *DeliveryHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid delivery ID format")
		return
	}

	var req UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.deliveryService.Update(c.Request.Context(), vendorID, deliveryID, logisticsapp.UpdateDeliveryRequest{
		Address:          req.Address,
		DriverName:       req.DriverName,
		DriverPhone:      req.DriverPhone,
		EstimatedArrival: req.EstimatedArrival,
		Notes:            req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// Transition handles PATCH /logistics/deliveries/:id/status
func (h *DeliveryHandler) Transition(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid delivery ID format")
		return
	}

	var req TransitionDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	delivery, err := h.deliveryService.Transition(c.Request.Context(), vendorID, deliveryID, logistics.DeliveryStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delivery)
}

// Delete handles DELETE /logistics/deliveries/:id
func (h *DeliveryHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid delivery ID format")
		return
	}

	if err := h.deliveryService.Delete(c.Request.Context(), vendorID, deliveryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
