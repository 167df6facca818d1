package handler

import (
	tradeapp "github.com/africommerce/backend/internal/application/trade"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/africommerce/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order management API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderItemRequest represents one line of a new order
type OrderItemRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=product service"`
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents a request to create a new order
type CreateOrderRequest struct {
	CustomerID    string             `json:"customer_id" binding:"required,uuid"`
	PaymentMethod string             `json:"payment_method" binding:"max=50"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// TransitionOrderRequest represents a request to move an order to a new status
type TransitionOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed delivered cancelled"`
}

// Create handles POST /trade/orders
func (h *OrderHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	appReq := tradeapp.CreateOrderRequest{
		CustomerID:    customerID,
		PaymentMethod: req.PaymentMethod,
		Items:         make([]tradeapp.OrderItemRequest, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			h.BadRequest(c, "Invalid item ID format")
			return
		}
		appReq.Items = append(appReq.Items, tradeapp.OrderItemRequest{
			Kind:     item.Kind,
			ItemID:   itemID,
			Quantity: item.Quantity,
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), vendorID, appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID handles GET /trade/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), vendorID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List handles GET /trade/orders
func (h *OrderHandler) List(c *gin.Context) {
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

	orders, err := h.orderService.List(c.Request.Context(), vendorID, req.ToFilter())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// Transition handles PATCH /trade/orders/:id/status
func (h *OrderHandler) Transition(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), vendorID, orderID, trade.OrderStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete handles DELETE /trade/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), vendorID, orderID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
