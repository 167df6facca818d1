package trade

import (
	"time"

	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest carries one line of a new order
type OrderItemRequest struct {
	Kind     string
	ItemID   uuid.UUID
	Quantity int
}

// CreateOrderRequest carries the fields for creating an order
type CreateOrderRequest struct {
	CustomerID    uuid.UUID
	PaymentMethod string
	Items         []OrderItemRequest
}

// OrderItemResponse is the read model for an order line
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse is the read model for an order
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerID    uuid.UUID           `json:"customer_id"`
	CustomerName  string              `json:"customer_name,omitempty"`
	Status        string              `json:"status"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	DeliveredAt   *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	CreatedAgo    string              `json:"created_ago"`
}

// ToOrderResponse converts an order to its read model
func ToOrderResponse(o *trade.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			Kind:      string(item.Kind),
			ItemID:    item.ItemID,
			ItemName:  item.ItemName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}
	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Status:        string(o.Status),
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Items:         items,
		DeliveredAt:   o.DeliveredAt,
		CreatedAt:     o.CreatedAt,
		CreatedAgo:    insight.TimeAgo(o.CreatedAt, time.Now()),
	}
}

// ToOrderResponses converts an order slice to read models
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
