package logistics

import (
	"time"

	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/google/uuid"
)

// CreateDeliveryRequest carries the fields for creating a delivery
type CreateDeliveryRequest struct {
	OrderID          uuid.UUID
	Address          string
	DriverName       string
	DriverPhone      string
	EstimatedArrival *time.Time
	Notes            string
}

// UpdateDeliveryRequest carries the mutable delivery fields.
// Nil fields are left unchanged. The tracking number is immutable
// and deliberately absent here.
type UpdateDeliveryRequest struct {
	Address          *string
	DriverName       *string
	DriverPhone      *string
	EstimatedArrival *time.Time
	Notes            *string
}

// DeliveryResponse is the read model for a delivery, joined with the
// order number and customer name the list screen renders.
type DeliveryResponse struct {
	ID               uuid.UUID  `json:"id"`
	TrackingNumber   string     `json:"tracking_number"`
	OrderID          uuid.UUID  `json:"order_id"`
	OrderNumber      string     `json:"order_number,omitempty"`
	CustomerID       uuid.UUID  `json:"customer_id"`
	CustomerName     string     `json:"customer_name,omitempty"`
	Address          string     `json:"address"`
	DriverName       string     `json:"driver_name,omitempty"`
	DriverPhone      string     `json:"driver_phone,omitempty"`
	Status           string     `json:"status"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	ActualDelivery   *time.Time `json:"actual_delivery,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CreatedAgo       string     `json:"created_ago"`
}

// ToDeliveryResponse converts a delivery to its read model
func ToDeliveryResponse(d *logistics.Delivery, orderNumber, customerName string) DeliveryResponse {
	return DeliveryResponse{
		ID:               d.ID,
		TrackingNumber:   d.TrackingNumber,
		OrderID:          d.OrderID,
		OrderNumber:      orderNumber,
		CustomerID:       d.CustomerID,
		CustomerName:     customerName,
		Address:          d.Address,
		DriverName:       d.DriverName,
		DriverPhone:      d.DriverPhone,
		Status:           string(d.Status),
		EstimatedArrival: d.EstimatedArrival,
		ActualDelivery:   d.ActualDelivery,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		CreatedAgo:       insight.TimeAgo(d.CreatedAt, time.Now()),
	}
}
