package services_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.DateFromString(s)
	require.NoError(t, err)
	return d
}

func datePtr(d kernel.Date) *kernel.Date {
	return &d
}

func testItems() []order.Item {
	return []order.Item{order.RestoreItem("steel bolts", 40, decimal.RequireFromString("0.35"))}
}

// stored builds a previously persisted purchase order with the given status and dates.
func stored(t *testing.T, status string, lifecycle order.LifecycleDates) *order.Order {
	t.Helper()
	return order.RestoreOrder(7, "PO-007", "Acme Supply", mustDate(t, "2026-08-01"),
		testItems(), status, order.Purchase, lifecycle)
}

// replacement builds an incoming full-replacement record carrying the target status.
// Incoming lifecycle dates are deliberately empty: the reconciler derives them
// from the previous record, never trusts the caller's.
func replacement(t *testing.T, status string) *order.Order {
	t.Helper()
	return order.RestoreOrder(0, "", "Acme Supply", mustDate(t, "2026-08-01"),
		testItems(), status, order.Purchase, order.LifecycleDates{})
}

func TestLifecycleReconciler_TransitionTable(t *testing.T) {
	today := mustDate(t, "2026-08-20")
	shipped := mustDate(t, "2026-08-02")
	received := mustDate(t, "2026-08-05")
	returned := mustDate(t, "2026-08-09")
	cancelled := mustDate(t, "2026-08-11")
	reconciler := services.NewLifecycleReconciler()

	testCases := []struct {
		name          string
		fromStatus    string
		fromDates     order.LifecycleDates
		toStatus      string
		wantShipping  *kernel.Date
		wantReceived  *kernel.Date
		wantReturned  *kernel.Date
		wantCancelled *kernel.Date
	}{
		{
			name:       "pending to shipping stamps shipping date and clears cancellation",
			fromStatus: "pending",
			fromDates:  order.LifecycleDates{Cancelled: datePtr(cancelled)},
			toStatus:   "shipping",
			wantShipping: datePtr(today),
		},
		{
			name:       "shipping to pending clears shipping and cancellation",
			fromStatus: "shipping",
			fromDates:  order.LifecycleDates{Shipping: datePtr(shipped)},
			toStatus:   "pending",
		},
		{
			name:       "pending to cancelled stamps cancellation",
			fromStatus: "pending",
			toStatus:   "cancelled",
			wantCancelled: datePtr(today),
		},
		{
			name:       "shipping to cancelled clears shipping, keeps received and returned",
			fromStatus: "shipping",
			fromDates: order.LifecycleDates{
				Shipping: datePtr(shipped),
				Received: datePtr(received),
				Returned: datePtr(returned),
			},
			toStatus:      "cancelled",
			wantReceived:  datePtr(received),
			wantReturned:  datePtr(returned),
			wantCancelled: datePtr(today),
		},
		{
			name:       "cancelled to cancelled keeps the original cancellation date",
			fromStatus: "cancelled",
			fromDates:  order.LifecycleDates{Cancelled: datePtr(cancelled)},
			toStatus:   "cancelled",
			wantCancelled: datePtr(cancelled),
		},
		{
			name:       "shipping to received stamps received and clears returned",
			fromStatus: "shipping",
			fromDates: order.LifecycleDates{
				Shipping: datePtr(shipped),
				Returned: datePtr(returned),
			},
			toStatus:     "received",
			wantShipping: datePtr(shipped),
			wantReceived: datePtr(today),
		},
		{
			name:       "received to received keeps the original received date",
			fromStatus: "received",
			fromDates: order.LifecycleDates{
				Shipping: datePtr(shipped),
				Received: datePtr(received),
			},
			toStatus:     "received",
			wantShipping: datePtr(shipped),
			wantReceived: datePtr(received),
		},
		{
			name:       "received to returned stamps returned and keeps received",
			fromStatus: "received",
			fromDates: order.LifecycleDates{
				Shipping: datePtr(shipped),
				Received: datePtr(received),
			},
			toStatus:     "returned",
			wantShipping: datePtr(shipped),
			wantReceived: datePtr(received),
			wantReturned: datePtr(today),
		},
		{
			name:       "returned to returned keeps existing dates",
			fromStatus: "returned",
			fromDates: order.LifecycleDates{
				Received: datePtr(received),
				Returned: datePtr(returned),
			},
			toStatus:     "returned",
			wantReceived: datePtr(received),
			wantReturned: datePtr(returned),
		},
		{
			name:       "returned to received clears returned and keeps received",
			fromStatus: "returned",
			fromDates: order.LifecycleDates{
				Received: datePtr(received),
				Returned: datePtr(returned),
			},
			toStatus:     "received",
			wantReceived: datePtr(received),
		},
		{
			name:       "unrecognized target keeps every date",
			fromStatus: "received",
			fromDates: order.LifecycleDates{
				Shipping: datePtr(shipped),
				Received: datePtr(received),
			},
			toStatus:     "bogus",
			wantShipping: datePtr(shipped),
			wantReceived: datePtr(received),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			previous := stored(t, tc.fromStatus, tc.fromDates)
			incoming := replacement(t, tc.toStatus)

			got := reconciler.Reconcile(previous, incoming, today)

			assertDate(t, tc.wantShipping, got.ShippingDate(), "shippingDate")
			assertDate(t, tc.wantReceived, got.ReceivedDate(), "receivedDate")
			assertDate(t, tc.wantReturned, got.ReturnedDate(), "returnedDate")
			assertDate(t, tc.wantCancelled, got.CancelledDate(), "cancelledDate")
		})
	}
}

func assertDate(t *testing.T, want, got *kernel.Date, field string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got, field)
		return
	}
	require.NotNil(t, got, field)
	assert.True(t, want.IsEqual(*got), "%s: want %s, got %s", field, want, got)
}

func TestLifecycleReconciler_ForcesIdentity(t *testing.T) {
	today := mustDate(t, "2026-08-20")
	reconciler := services.NewLifecycleReconciler()

	previous := stored(t, "pending", order.LifecycleDates{})
	incoming := order.RestoreOrder(999, "PO-999", "Replacement Vendor", mustDate(t, "2026-08-03"),
		testItems(), "shipping", order.Purchase, order.LifecycleDates{})

	got := reconciler.Reconcile(previous, incoming, today)

	assert.Equal(t, 7, got.ID(), "id must come from the stored record")
	assert.Equal(t, "PO-007", got.Number(), "number is never regenerated")
	assert.Equal(t, "Replacement Vendor", got.CounterpartyName(), "replaceable fields come from incoming")
	assert.True(t, got.OrderDate().IsEqual(mustDate(t, "2026-08-03")))
}

func TestLifecycleReconciler_IgnoresIncomingDates(t *testing.T) {
	today := mustDate(t, "2026-08-20")
	reconciler := services.NewLifecycleReconciler()

	previous := stored(t, "pending", order.LifecycleDates{})
	forged := mustDate(t, "2020-01-01")
	incoming := order.RestoreOrder(0, "", "Acme Supply", mustDate(t, "2026-08-01"),
		testItems(), "pending", order.Purchase,
		order.LifecycleDates{Received: datePtr(forged), Cancelled: datePtr(forged)})

	got := reconciler.Reconcile(previous, incoming, today)

	assert.Nil(t, got.ReceivedDate(), "caller-supplied dates must not leak into the record")
	assert.Nil(t, got.CancelledDate())
}

func TestLifecycleReconciler_StatusNormalization(t *testing.T) {
	today := mustDate(t, "2026-08-20")
	reconciler := services.NewLifecycleReconciler()

	t.Run("recognized status is normalized to lower case", func(t *testing.T) {
		previous := stored(t, "pending", order.LifecycleDates{})

		got := reconciler.Reconcile(previous, replacement(t, "SHIPPING"), today)

		assert.Equal(t, order.Shipping, got.Status())
		assert.Equal(t, "shipping", got.StatusLabel())
	})

	t.Run("unrecognized status is stored verbatim", func(t *testing.T) {
		previous := stored(t, "pending", order.LifecycleDates{})

		got := reconciler.Reconcile(previous, replacement(t, "On Hold"), today)

		assert.Equal(t, order.Unknown, got.Status())
		assert.Equal(t, "On Hold", got.StatusLabel())
	})
}

func TestLifecycleReconciler_Idempotence(t *testing.T) {
	today := mustDate(t, "2026-08-20")
	reconciler := services.NewLifecycleReconciler()

	for _, status := range []string{"pending", "shipping", "received", "returned", "cancelled"} {
		t.Run(status, func(t *testing.T) {
			previous := stored(t, "pending", order.LifecycleDates{})

			once := reconciler.Reconcile(previous, replacement(t, status), today)
			twice := reconciler.Reconcile(once, replacement(t, status), today.AddDays(3))

			assertDate(t, once.ShippingDate(), twice.ShippingDate(), "shippingDate")
			assertDate(t, once.ReceivedDate(), twice.ReceivedDate(), "receivedDate")
			assertDate(t, once.ReturnedDate(), twice.ReturnedDate(), "returnedDate")
			assertDate(t, once.CancelledDate(), twice.CancelledDate(), "cancelledDate")
		})
	}
}

func TestLifecycleReconciler_ShipThenReceiveScenario(t *testing.T) {
	reconciler := services.NewLifecycleReconciler()
	shipDay := mustDate(t, "2026-08-20")
	receiveDay := mustDate(t, "2026-08-25")

	created := stored(t, "pending", order.LifecycleDates{})

	shippingOrder := reconciler.Reconcile(created, replacement(t, "shipping"), shipDay)
	require.NotNil(t, shippingOrder.ShippingDate())
	assert.True(t, shippingOrder.ShippingDate().IsEqual(shipDay))
	assert.Nil(t, shippingOrder.CancelledDate())

	receivedOrder := reconciler.Reconcile(shippingOrder, replacement(t, "received"), receiveDay)
	require.NotNil(t, receivedOrder.ReceivedDate())
	assert.True(t, receivedOrder.ReceivedDate().IsEqual(receiveDay))
	assert.Nil(t, receivedOrder.ReturnedDate())
	require.NotNil(t, receivedOrder.ShippingDate())
	assert.True(t, receivedOrder.ShippingDate().IsEqual(shipDay),
		"shipping date must stay at the shipping step's value")
}

func TestLifecycleReconciler_ReturnThenRevertScenario(t *testing.T) {
	reconciler := services.NewLifecycleReconciler()
	receivedDay := mustDate(t, "2026-08-05")
	returnDay := mustDate(t, "2026-08-20")

	receivedOrder := stored(t, "received", order.LifecycleDates{Received: datePtr(receivedDay)})

	returnedOrder := reconciler.Reconcile(receivedOrder, replacement(t, "returned"), returnDay)
	require.NotNil(t, returnedOrder.ReturnedDate())
	assert.True(t, returnedOrder.ReturnedDate().IsEqual(returnDay))
	require.NotNil(t, returnedOrder.ReceivedDate())
	assert.True(t, returnedOrder.ReceivedDate().IsEqual(receivedDay), "received date unchanged")

	revertedOrder := reconciler.Reconcile(returnedOrder, replacement(t, "received"), returnDay.AddDays(1))
	assert.Nil(t, revertedOrder.ReturnedDate())
	require.NotNil(t, revertedOrder.ReceivedDate())
	assert.True(t, revertedOrder.ReceivedDate().IsEqual(receivedDay), "received date unchanged")
}

func TestLifecycleReconciler_SalesVocabulary(t *testing.T) {
	reconciler := services.NewLifecycleReconciler()
	today := mustDate(t, "2026-08-20")

	previous := order.RestoreOrder(3, "SO-003", "Northwind Retail", mustDate(t, "2026-08-01"),
		testItems(), "shipping",
		order.Sales, order.LifecycleDates{Shipping: datePtr(mustDate(t, "2026-08-02"))})
	incoming := order.RestoreOrder(0, "", "Northwind Retail", mustDate(t, "2026-08-01"),
		testItems(), "Delivered", order.Sales, order.LifecycleDates{})

	got := reconciler.Reconcile(previous, incoming, today)

	assert.Equal(t, order.Received, got.Status())
	assert.Equal(t, "delivered", got.StatusLabel())
	require.NotNil(t, got.ReceivedDate())
	assert.True(t, got.ReceivedDate().IsEqual(today))
}
