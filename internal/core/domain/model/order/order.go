package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// LifecycleDates carries the four nullable dates that record when an order
// entered each lifecycle state. A nil entry means the order never reached
// that state, or the state was since undone.
type LifecycleDates struct {
	Shipping  *kernel.Date
	Received  *kernel.Date
	Returned  *kernel.Date
	Cancelled *kernel.Date
}

// Clone returns a deep copy so that callers can never alias stored dates.
func (d LifecycleDates) Clone() LifecycleDates {
	return LifecycleDates{
		Shipping:  cloneDate(d.Shipping),
		Received:  cloneDate(d.Received),
		Returned:  cloneDate(d.Returned),
		Cancelled: cloneDate(d.Cancelled),
	}
}

func cloneDate(d *kernel.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// Order is the aggregate root for a commercial order, purchase or sales.
// It aggregates line items, a lifecycle status, and the per-state dates,
// and guarantees that a stored record never contradicts its declared status.
//
// Order follows these invariants:
//   - Created in pending status with every lifecycle date nil
//   - Identifier and number are assigned once and never change afterwards
//   - A lifecycle date is set exactly when the transition table dictates it;
//     reconciliation against the previous record happens before every update
//   - Mutated only through full-record replacement, never partial patches
//
// The struct uses private fields to keep the invariants inside the aggregate;
// rehydration from persistence goes through RestoreOrder.
type Order struct {
	// id is the integer identifier assigned by the number generator (0 = unassigned)
	id int

	// number is the human-readable order number, e.g. "PO-004"
	number string

	// counterpartyName is the vendor (purchase) or customer (sales)
	counterpartyName string

	// orderDate is the calendar date the order was placed
	orderDate kernel.Date

	// items are the order lines; totals are derived from them
	items []Item

	// status is the parsed lifecycle state; Unknown for out-of-vocabulary strings
	status Status

	// statusLabel is the stored status string: canonical spelling for
	// recognized statuses, verbatim input for unrecognized ones
	statusLabel string

	// lifecycle holds the four per-state dates
	lifecycle LifecycleDates

	// variant selects the purchase or sales vocabulary
	variant Variant

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in pending status with all lifecycle dates nil.
// The identifier and number are left unassigned; the repository fills them in
// on first persist.
//
// Validation rules:
//   - counterpartyName must not be empty
//   - orderDate must be a constructed date and must not lie in the future
//   - at least one item is required, and every item must be constructed
//
// All violations are reported together via errors.Join.
func NewOrder(counterpartyName string, orderDate kernel.Date, items []Item, variant Variant) (*Order, error) {
	o := &Order{
		status:        Pending,
		statusLabel:   Pending.Label(variant),
		variant:       variant,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCounterpartyName(counterpartyName),
		o.setOrderDate(orderDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence.
//
// The store is trusted: no business validation is applied, so a record with
// no items or an out-of-vocabulary status round-trips unchanged. The status
// string is parsed against the variant's vocabulary; recognized statuses are
// normalized to their canonical lower-case spelling, anything else is kept
// verbatim with the status set to Unknown.
func RestoreOrder(
	id int,
	number string,
	counterpartyName string,
	orderDate kernel.Date,
	items []Item,
	statusLabel string,
	variant Variant,
	lifecycle LifecycleDates,
) *Order {
	status, recognized := ParseStatus(variant, statusLabel)
	label := statusLabel
	if recognized {
		label = status.Label(variant)
	}

	return &Order{
		id:               id,
		number:           number,
		counterpartyName: counterpartyName,
		orderDate:        orderDate,
		items:            copyItems(items),
		status:           status,
		statusLabel:      label,
		lifecycle:        lifecycle.Clone(),
		variant:          variant,
		isConstructed:    true,
	}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the integer identifier (0 until assigned).
func (o *Order) ID() int {
	return o.id
}

// Number returns the human-readable order number ("" until assigned).
func (o *Order) Number() string {
	return o.number
}

// CounterpartyName returns the vendor or customer name.
func (o *Order) CounterpartyName() string {
	return o.counterpartyName
}

// OrderDate returns the calendar date the order was placed.
func (o *Order) OrderDate() kernel.Date {
	return o.orderDate
}

// Items returns a copy of the order lines. The result is never nil: an
// order restored without lines yields an empty sequence.
func (o *Order) Items() []Item {
	return copyItems(o.items)
}

// copyItems copies a line item slice, preserving emptiness as an empty
// non-nil slice.
func copyItems(items []Item) []Item {
	copied := make([]Item, 0, len(items))
	return append(copied, items...)
}

// Status returns the parsed lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// StatusLabel returns the stored status string. For recognized statuses this
// is the canonical lower-case spelling; for unrecognized ones the verbatim
// input that was supplied.
func (o *Order) StatusLabel() string {
	return o.statusLabel
}

// Variant returns the order book this order belongs to.
func (o *Order) Variant() Variant {
	return o.variant
}

// Lifecycle returns a copy of the four lifecycle dates.
func (o *Order) Lifecycle() LifecycleDates {
	return o.lifecycle.Clone()
}

// ShippingDate returns when the order entered shipping, or nil.
func (o *Order) ShippingDate() *kernel.Date {
	return cloneDate(o.lifecycle.Shipping)
}

// ReceivedDate returns when the order was received, or nil.
func (o *Order) ReceivedDate() *kernel.Date {
	return cloneDate(o.lifecycle.Received)
}

// ReturnedDate returns when the order was returned, or nil.
func (o *Order) ReturnedDate() *kernel.Date {
	return cloneDate(o.lifecycle.Returned)
}

// CancelledDate returns when the order was cancelled, or nil.
func (o *Order) CancelledDate() *kernel.Date {
	return cloneDate(o.lifecycle.Cancelled)
}

// TotalPrice returns the sum of all line totals.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// AssignIdentity sets the identifier and number on a freshly created order.
// Called by repositories during Add; identity is never reassigned afterwards.
//
// Returns an error if the order already carries an identifier, or if the
// supplied id is not positive.
func (o *Order) AssignIdentity(id int, number string) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("order already has id %d", o.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", id))
	}

	o.id = id
	o.number = number
	return nil
}

// Clone returns a deep copy of the order. Repositories hand out clones so
// that callers can never mutate stored state through a returned record.
func (o *Order) Clone() *Order {
	c := *o
	c.items = copyItems(o.items)
	c.lifecycle = o.lifecycle.Clone()
	return &c
}

func (o *Order) setCounterpartyName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("counterpartyName")
	}
	o.counterpartyName = name
	return nil
}

func (o *Order) setOrderDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	if date.After(kernel.Today()) {
		return errs.NewValueIsInvalidErrorWithCause("orderDate",
			fmt.Errorf("%s is in the future", date))
	}
	o.orderDate = date
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = copyItems(items)
	return nil
}
