package insight

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVIPPolicy(t *testing.T) {
	policy := DefaultVIPPolicy()

	t.Run("spend exactly at threshold qualifies", func(t *testing.T) {
		stats := CustomerStats{OrderCount: 3, TotalSpent: decimal.NewFromInt(500)}
		assert.True(t, policy.IsVIP(stats))
	})

	t.Run("one cent below threshold does not qualify", func(t *testing.T) {
		stats := CustomerStats{OrderCount: 3, TotalSpent: decimal.NewFromFloat(499.99)}
		assert.False(t, policy.IsVIP(stats))
	})

	t.Run("order count clause qualifies independently", func(t *testing.T) {
		stats := CustomerStats{OrderCount: 10, TotalSpent: decimal.NewFromInt(50)}
		assert.True(t, policy.IsVIP(stats))

		stats.OrderCount = 9
		assert.False(t, policy.IsVIP(stats))
	})

	t.Run("high spend with few orders qualifies", func(t *testing.T) {
		// Three orders totaling 520 against a 500 spend threshold.
		stats := CustomerStats{OrderCount: 3, TotalSpent: decimal.NewFromInt(520)}
		assert.True(t, policy.IsVIP(stats))
	})

	t.Run("custom thresholds are honored", func(t *testing.T) {
		custom := VIPPolicy{MinSpend: decimal.NewFromInt(1000), MinOrders: 15}

		assert.False(t, custom.IsVIP(CustomerStats{OrderCount: 10, TotalSpent: decimal.NewFromInt(520)}))
		assert.True(t, custom.IsVIP(CustomerStats{OrderCount: 15, TotalSpent: decimal.Zero}))
		assert.True(t, custom.IsVIP(CustomerStats{OrderCount: 0, TotalSpent: decimal.NewFromInt(1000)}))
	})
}
