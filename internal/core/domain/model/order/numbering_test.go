package order_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreWithID(t *testing.T, id int) *order.Order {
	t.Helper()
	date, err := kernel.NewDate(2026, time.August, 1)
	require.NoError(t, err)
	item := order.RestoreItem("gasket", 1, decimal.NewFromInt(2))
	return order.RestoreOrder(id, order.Number(order.Purchase, id), "Acme Supply", date,
		[]order.Item{item}, "pending", order.Purchase, order.LifecycleDates{})
}

func TestNextID(t *testing.T) {
	t.Run("empty collection starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, order.NextID(nil))
		assert.Equal(t, 1, order.NextID([]*order.Order{}))
	})

	t.Run("next id is max plus one", func(t *testing.T) {
		existing := []*order.Order{restoreWithID(t, 5), restoreWithID(t, 10)}

		assert.Equal(t, 11, order.NextID(existing))
	})

	t.Run("gaps do not matter, only the maximum", func(t *testing.T) {
		existing := []*order.Order{restoreWithID(t, 3), restoreWithID(t, 1), restoreWithID(t, 7)}

		assert.Equal(t, 8, order.NextID(existing))
	})

	t.Run("deleting the highest id frees its number", func(t *testing.T) {
		existing := []*order.Order{restoreWithID(t, 1), restoreWithID(t, 2)}

		// Simulate deletion of id 2: the next insert reuses it.
		assert.Equal(t, 2, order.NextID(existing[:1]))
	})
}

func TestNumber(t *testing.T) {
	testCases := []struct {
		variant order.Variant
		id      int
		want    string
	}{
		{order.Purchase, 1, "PO-001"},
		{order.Purchase, 42, "PO-042"},
		{order.Purchase, 1234, "PO-1234"},
		{order.Sales, 7, "SO-007"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, order.Number(tc.variant, tc.id))
		})
	}
}
