package trade

import (
	"time"

	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a customer order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transition
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo checks if the status can transition to the target status.
// Transitions are one-directional: pending → confirmed → delivered, with
// cancellation allowed only before delivery.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered, OrderStatusCancelled:
		return false
	}
	return false
}

// LineItemKind distinguishes product lines from service lines
type LineItemKind string

const (
	LineItemKindProduct LineItemKind = "product"
	LineItemKindService LineItemKind = "service"
)

// OrderItem represents one line of an order, referencing either a
// product or a service from the vendor's catalog.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind      LineItemKind    `gorm:"type:varchar(20);not null"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName  string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	LineTotal decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID uuid.UUID, kind LineItemKind, itemID uuid.UUID, itemName string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if kind != LineItemKindProduct && kind != LineItemKindService {
		return nil, shared.NewDomainError("INVALID_INPUT", "Line item must reference a product or a service")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Line item reference cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Line item name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		Kind:      kind,
		ItemID:    itemID,
		ItemName:  itemName,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order represents a customer order placed against a vendor's storefront.
// DeliveredAt is stamped at the moment of the transition to delivered,
// never before.
type Order struct {
	shared.VendorEntity
	OrderNumber   string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_order_vendor_number,priority:2"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName  string          `gorm:"type:varchar(200)"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	Items         []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in the pending state
func NewOrder(vendorID uuid.UUID, orderNumber string, customerID uuid.UUID, customerName, paymentMethod string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer reference cannot be empty")
	}

	return &Order{
		VendorEntity:  shared.NewVendorEntity(vendorID),
		OrderNumber:   orderNumber,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Status:        OrderStatusPending,
		TotalAmount:   decimal.Zero,
		PaymentMethod: paymentMethod,
		Items:         make([]OrderItem, 0),
	}, nil
}

// AddItem adds a line item and recalculates the order total.
// Items can only be changed while the order is pending.
func (o *Order) AddItem(kind LineItemKind, itemID uuid.UUID, itemName string, quantity int, unitPrice decimal.Decimal) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Items can only be added to a pending order")
	}

	item, err := NewOrderItem(o.ID, kind, itemID, itemName, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.Items = append(o.Items, *item)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()

	return nil
}

// RemoveItem removes a line item and recalculates the order total
func (o *Order) RemoveItem(itemID uuid.UUID) error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Items can only be removed from a pending order")
	}

	for i, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			return nil
		}
	}
	return shared.ErrNotFound
}

// Transition moves the order to the target status, enforcing the state
// machine. Transitioning to delivered stamps DeliveredAt at the time of
// the transition.
func (o *Order) Transition(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	now := time.Now()
	o.Status = target
	switch target {
	case OrderStatusDelivered:
		o.DeliveredAt = &now
	case OrderStatusCancelled:
		o.CancelledAt = &now
	}
	o.UpdatedAt = now

	return nil
}

// Confirm moves a pending order to confirmed
func (o *Order) Confirm() error {
	return o.Transition(OrderStatusConfirmed)
}

// Deliver marks the order as delivered
func (o *Order) Deliver() error {
	return o.Transition(OrderStatusDelivered)
}

// Cancel cancels the order if it has not been delivered
func (o *Order) Cancel() error {
	return o.Transition(OrderStatusCancelled)
}

// IsPending reports whether the order awaits confirmation
func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}

// IsDelivered reports whether the order reached the customer
func (o *Order) IsDelivered() bool {
	return o.Status == OrderStatusDelivered
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal)
	}
	o.TotalAmount = total
}
