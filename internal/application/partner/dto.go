package partner

import (
	"time"

	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest carries the fields for creating a customer
type CreateCustomerRequest struct {
	Name     string
	Email    string
	Phone    string
	Location string
}

// UpdateCustomerRequest carries the fields for updating a customer.
// Nil fields are left unchanged.
type UpdateCustomerRequest struct {
	Name     *string
	Email    *string
	Phone    *string
	Location *string
}

// CustomerResponse is the read model for a customer, including the
// derived order aggregates and the VIP classification. OrderCount and
// TotalSpent are computed from the customer's order snapshot at read
// time; they are never persisted.
type CustomerResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Location    string          `json:"location,omitempty"`
	OrderCount   int             `json:"order_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	IsVIP        bool            `json:"is_vip"`
	LastOrderAt  *time.Time      `json:"last_order_at,omitempty"`
	LastOrderAgo string          `json:"last_order_ago,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ToCustomerResponse combines a customer with their derived stats
func ToCustomerResponse(c *partner.Customer, stats insight.CustomerStats, policy insight.VIPPolicy) CustomerResponse {
	lastOrderAgo := ""
	if stats.LastOrderAt != nil {
		lastOrderAgo = insight.TimeAgo(*stats.LastOrderAt, time.Now())
	}
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		OrderCount:   stats.OrderCount,
		TotalSpent:   stats.TotalSpent,
		IsVIP:        policy.IsVIP(stats),
		LastOrderAt:  stats.LastOrderAt,
		LastOrderAgo: lastOrderAgo,
		CreatedAt:    c.CreatedAt,
	}
}
