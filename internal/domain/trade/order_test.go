package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *Order {
	t.Helper()
	order, err := NewOrder(uuid.New(), "ORD-20260830-TEST", uuid.New(), "Ama Mensah", "mobile_money")
	require.NoError(t, err)
	return order
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Equal(t, OrderStatusPending, order.Status)
		assert.True(t, order.TotalAmount.IsZero())
		assert.Nil(t, order.DeliveredAt)
		assert.Empty(t, order.Items)
	})

	t.Run("fails with empty order number", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), "", uuid.New(), "Ama", "cash")

		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("fails without customer reference", func(t *testing.T) {
		order, err := NewOrder(uuid.New(), "ORD-1", uuid.Nil, "Ama", "cash")

		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderItems(t *testing.T) {
	t.Run("adding items recalculates total", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.AddItem(LineItemKindProduct, uuid.New(), "Jollof Rice", 2, decimal.NewFromFloat(15.00)))
		require.NoError(t, order.AddItem(LineItemKindService, uuid.New(), "Catering", 1, decimal.NewFromFloat(120.00)))

		assert.Len(t, order.Items, 2)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(150.00)))
	})

	t.Run("removing an item recalculates total", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.AddItem(LineItemKindProduct, uuid.New(), "Jollof Rice", 2, decimal.NewFromFloat(15.00)))
		itemID := order.Items[0].ID

		require.NoError(t, order.RemoveItem(itemID))
		assert.Empty(t, order.Items)
		assert.True(t, order.TotalAmount.IsZero())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		order := newTestOrder(t)
		err := order.AddItem(LineItemKindProduct, uuid.New(), "Jollof Rice", 0, decimal.NewFromInt(15))
		assert.Error(t, err)
	})

	t.Run("items frozen after confirmation", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Confirm())

		err := order.AddItem(LineItemKindProduct, uuid.New(), "Jollof Rice", 1, decimal.NewFromInt(15))
		assert.Error(t, err)
	})
}

func TestOrderStatusTransitions(t *testing.T) {
	t.Run("pending to confirmed to delivered", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.Confirm())
		assert.Equal(t, OrderStatusConfirmed, order.Status)
		assert.Nil(t, order.DeliveredAt)

		require.NoError(t, order.Deliver())
		assert.Equal(t, OrderStatusDelivered, order.Status)
		require.NotNil(t, order.DeliveredAt)
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		order := newTestOrder(t)

		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status)
		assert.NotNil(t, order.CancelledAt)
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Confirm())

		assert.NoError(t, order.Cancel())
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Confirm())
		require.NoError(t, order.Deliver())

		assert.Error(t, order.Transition(OrderStatusPending))
		assert.Error(t, order.Cancel())
		assert.Error(t, order.Confirm())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		order := newTestOrder(t)
		require.NoError(t, order.Cancel())

		assert.Error(t, order.Confirm())
		assert.Error(t, order.Deliver())
	})

	t.Run("pending cannot skip to delivered", func(t *testing.T) {
		order := newTestOrder(t)

		assert.Error(t, order.Deliver())
		assert.Nil(t, order.DeliveredAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		order := newTestOrder(t)
		assert.Error(t, order.Transition(OrderStatus("shipped")))
	})
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusDelivered, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
