package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the mutable fields of a
// stored order. The status is carried as a free-form string: recognized
// statuses drive lifecycle date reconciliation, anything else is stored
// verbatim.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          int
	counterpartyName string
	orderDate        kernel.Date
	items            []order.Item
	statusLabel      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Validates that the order id is positive, the counterparty name is not
// empty, and at least one line item is present.
func NewUpdateOrderCommand(
	orderID int,
	counterpartyName string,
	orderDate kernel.Date,
	items []order.Item,
	statusLabel string,
) (UpdateOrderCommand, error) {
	updateCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setCounterpartyName(counterpartyName),
		updateCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	updateCommand.orderDate = orderDate
	updateCommand.statusLabel = statusLabel
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int {
	return c.orderID
}

// CounterpartyName returns the name of the counterparty.
func (c UpdateOrderCommand) CounterpartyName() string {
	return c.counterpartyName
}

// OrderDate returns the calendar date the order was placed.
func (c UpdateOrderCommand) OrderDate() kernel.Date {
	return c.orderDate
}

// Items returns the line items of the order.
func (c UpdateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// StatusLabel returns the requested status string.
func (c UpdateOrderCommand) StatusLabel() string {
	return c.statusLabel
}

func (c *UpdateOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCounterpartyName(counterpartyName string) error {
	if counterpartyName == "" {
		return ErrCounterpartyNameIsRequired
	}

	c.counterpartyName = counterpartyName
	return nil
}

func (c *UpdateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
