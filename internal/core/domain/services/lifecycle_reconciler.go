package services

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// LifecycleReconciler is a domain service that derives the correct lifecycle
// dates for an incoming full-replacement record given its previously stored
// state. It is the single place where the status transition table lives.
//
// Transition table (purchase vocabulary; "today" is the supplied date):
//
//	pending   -> shipping : shippingDate = today, cancelledDate cleared
//	shipping  -> pending  : shippingDate cleared, cancelledDate cleared
//	any       -> cancelled: shippingDate cleared, cancelledDate = today
//	cancelled -> cancelled: keep existing cancelledDate
//	shipping  -> received : receivedDate = today, returnedDate cleared
//	received  -> received : keep existing receivedDate
//	received  -> returned : returnedDate = today, receivedDate kept
//	returned  -> returned : keep existing dates
//	returned  -> received : returnedDate cleared, receivedDate kept
//	unrecognized target   : every date kept, status stored verbatim
//
// Only the cells named by the matching row are touched; every other lifecycle
// field keeps its value from the previous record. The reconciler is a total
// function: it never rejects a transition, and validation of the target
// status against the externally allowed values is the caller's concern.
type LifecycleReconciler struct{}

// NewLifecycleReconciler creates a new LifecycleReconciler instance.
func NewLifecycleReconciler() LifecycleReconciler {
	return LifecycleReconciler{}
}

// Reconcile returns a copy of incoming with the identifier and number forced
// to those of previous and the lifecycle dates corrected per the transition
// table. The previous record is authoritative for identity, variant, and the
// date baseline; incoming is authoritative for every replaceable field.
func (LifecycleReconciler) Reconcile(previous, incoming *order.Order, today kernel.Date) *order.Order {
	variant := previous.Variant()
	prev := previous.Status()
	next, recognized := order.ParseStatus(variant, incoming.StatusLabel())

	dates := previous.Lifecycle()

	if recognized {
		switch {
		case next == order.Shipping && prev == order.Pending:
			dates.Shipping = &today
			dates.Cancelled = nil
		case next == order.Pending && prev == order.Shipping:
			dates.Shipping = nil
			dates.Cancelled = nil
		case next == order.Cancelled && prev != order.Cancelled:
			dates.Shipping = nil
			dates.Cancelled = &today
		case next == order.Received && prev == order.Shipping:
			dates.Received = &today
			dates.Returned = nil
		case next == order.Returned && prev == order.Received:
			dates.Returned = &today
		case next == order.Received && prev == order.Returned:
			dates.Returned = nil
		}
		// Self-transitions and pairs without a row keep the previous dates.
	}

	label := incoming.StatusLabel()
	if recognized {
		label = next.Label(variant)
	}

	return order.RestoreOrder(
		previous.ID(),
		previous.Number(),
		incoming.CounterpartyName(),
		incoming.OrderDate(),
		incoming.Items(),
		label,
		variant,
		dates,
	)
}
