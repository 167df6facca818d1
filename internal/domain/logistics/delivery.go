package logistics

import (
	"time"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DeliveryStatus represents the status of a delivery
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// IsValid checks if the status is a valid DeliveryStatus
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of DeliveryStatus
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transition
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryStatusDelivered || s == DeliveryStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions are one-directional: pending → in_transit → delivered, with
// cancellation allowed only before the package arrives.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPending:
		return target == DeliveryStatusInTransit || target == DeliveryStatusCancelled
	case DeliveryStatusInTransit:
		return target == DeliveryStatusDelivered || target == DeliveryStatusCancelled
	case DeliveryStatusDelivered, DeliveryStatusCancelled:
		return false
	}
	return false
}

// Delivery represents the shipment of one order to one customer.
// The tracking number is assigned once at creation and is immutable.
// ActualDelivery is stamped at the moment of the transition to delivered;
// it is never backdated to the estimate.
type Delivery struct {
	shared.VendorEntity
	TrackingNumber   string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_delivery_vendor_tracking,priority:2"`
	OrderID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Address          string         `gorm:"type:text;not null"`
	DriverName       string         `gorm:"type:varchar(100)"`
	DriverPhone      string         `gorm:"type:varchar(50)"`
	Status           DeliveryStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	EstimatedArrival *time.Time
	ActualDelivery   *time.Time
	Notes            string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Delivery) TableName() string {
	return "deliveries"
}

// NewDelivery creates a new delivery in the pending state
func NewDelivery(vendorID uuid.UUID, trackingNumber string, orderID, customerID uuid.UUID, address string) (*Delivery, error) {
	if trackingNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Tracking number cannot be empty")
	}
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order reference cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer reference cannot be empty")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Delivery address cannot be empty")
	}

	return &Delivery{
		VendorEntity:   shared.NewVendorEntity(vendorID),
		TrackingNumber: trackingNumber,
		OrderID:        orderID,
		CustomerID:     customerID,
		Address:        address,
		Status:         DeliveryStatusPending,
	}, nil
}

// AssignDriver sets the driver handling the delivery
func (d *Delivery) AssignDriver(name, phone string) error {
	if name != "" && len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Driver name cannot exceed 100 characters")
	}
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Driver phone cannot exceed 50 characters")
	}

	d.DriverName = name
	d.DriverPhone = phone
	d.UpdatedAt = time.Now()

	return nil
}

// SetEstimatedArrival sets the expected delivery time
func (d *Delivery) SetEstimatedArrival(t time.Time) {
	d.EstimatedArrival = &t
	d.UpdatedAt = time.Now()
}

// SetNotes sets the free-text delivery notes
func (d *Delivery) SetNotes(notes string) {
	d.Notes = notes
	d.UpdatedAt = time.Now()
}

// Transition moves the delivery to the target status, enforcing the
// state machine. Transitioning to delivered stamps ActualDelivery at
// the time of the transition.
func (d *Delivery) Transition(target DeliveryStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown delivery status")
	}
	if !d.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition delivery from "+d.Status.String()+" to "+target.String())
	}

	now := time.Now()
	d.Status = target
	if target == DeliveryStatusDelivered {
		d.ActualDelivery = &now
	}
	d.UpdatedAt = now

	return nil
}

// Dispatch marks the delivery as picked up by the driver
func (d *Delivery) Dispatch() error {
	return d.Transition(DeliveryStatusInTransit)
}

// Complete marks the delivery as handed to the customer
func (d *Delivery) Complete() error {
	return d.Transition(DeliveryStatusDelivered)
}

// Cancel cancels the delivery before it arrives
func (d *Delivery) Cancel() error {
	return d.Transition(DeliveryStatusCancelled)
}
