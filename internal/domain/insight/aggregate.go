// Package insight provides the pure, deterministic aggregation and
// classification functions the dashboard computes over a session's
// loaded collections. Nothing in this package performs I/O; every
// function can be recomputed on every render.
package insight

import (
	"fmt"
	"time"

	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CountByStatus returns how many orders are in the given status
func CountByStatus(orders []trade.Order, status trade.OrderStatus) int {
	count := 0
	for _, o := range orders {
		if o.Status == status {
			count++
		}
	}
	return count
}

// SumAmounts returns the total revenue over the loaded orders.
// Cancelled orders are included; callers that want realized revenue
// should filter before summing.
func SumAmounts(orders []trade.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total
}

// CustomerStats holds the aggregates derived from one customer's orders.
// These values are never persisted; they are recomputed from the order
// snapshot so they cannot diverge from it.
type CustomerStats struct {
	OrderCount  int
	TotalSpent  decimal.Decimal
	LastOrderAt *time.Time
}

// StatsFor derives a customer's order count, total spend, and most
// recent order time from the given order snapshot.
func StatsFor(customerID uuid.UUID, orders []trade.Order) CustomerStats {
	stats := CustomerStats{TotalSpent: decimal.Zero}
	for i := range orders {
		o := &orders[i]
		if o.CustomerID != customerID {
			continue
		}
		stats.OrderCount++
		stats.TotalSpent = stats.TotalSpent.Add(o.TotalAmount)
		if stats.LastOrderAt == nil || o.CreatedAt.After(*stats.LastOrderAt) {
			t := o.CreatedAt
			stats.LastOrderAt = &t
		}
	}
	return stats
}

// TimeAgo formats elapsed wall-clock time into the coarse buckets used
// across the order, delivery, and customer screens: under an hour in
// minutes, under a day in hours, otherwise in days. Every screen must
// use this one implementation so the buckets never drift apart.
func TimeAgo(t, now time.Time) string {
	minutes := int(now.Sub(t).Minutes())
	if minutes < 0 {
		minutes = 0
	}
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d mins ago", minutes)
	case minutes < 1440:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/1440)
	}
}
