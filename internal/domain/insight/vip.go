package insight

import (
	"github.com/shopspring/decimal"
)

// VIPPolicy holds the configurable thresholds for the VIP customer
// classification. A customer qualifies when their total spend reaches
// MinSpend or their order count reaches MinOrders; both comparisons
// are inclusive.
type VIPPolicy struct {
	MinSpend  decimal.Decimal
	MinOrders int
}

// DefaultVIPPolicy returns the canonical thresholds: spend of 500 or
// 10 orders. Vendors can override both via configuration.
func DefaultVIPPolicy() VIPPolicy {
	return VIPPolicy{
		MinSpend:  decimal.NewFromInt(500),
		MinOrders: 10,
	}
}

// IsVIP reports whether a customer with the given stats qualifies as
// VIP under the policy. A spend exactly equal to the threshold
// qualifies; one cent below does not, unless the order-count clause
// independently qualifies them.
func (p VIPPolicy) IsVIP(stats CustomerStats) bool {
	if stats.TotalSpent.GreaterThanOrEqual(p.MinSpend) {
		return true
	}
	return stats.OrderCount >= p.MinOrders
}
