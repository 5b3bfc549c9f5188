// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, then persistence through the order repository port.
package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCounterpartyNameIsRequired = errors.New("counterparty name is required")
	ErrItemsAreRequired           = errors.New("at least one line item is required")
	ErrOrderIDIsInvalid           = errors.New("order id must be greater than 0")
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the counterparty, the order date, and the line items.
//
// Example:
//
//	item, _ := order.NewItem("Office Chair", 2, decimal.RequireFromString("149.90"))
//	cmd, err := NewCreateOrderCommand("Acme GmbH", kernel.Today(), []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	counterpartyName string
	orderDate        kernel.Date
	items            []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the counterparty name is not empty and at least one line
// item is present. The order date itself is validated by the order
// constructor when the command is handled.
func NewCreateOrderCommand(counterpartyName string, orderDate kernel.Date, items []order.Item) (CreateOrderCommand, error) {
	createCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setCounterpartyName(counterpartyName),
		createCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	createCommand.orderDate = orderDate
	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CounterpartyName returns the name of the counterparty.
func (c CreateOrderCommand) CounterpartyName() string {
	return c.counterpartyName
}

// OrderDate returns the calendar date the order was placed.
func (c CreateOrderCommand) OrderDate() kernel.Date {
	return c.orderDate
}

// Items returns the line items of the order.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *CreateOrderCommand) setCounterpartyName(counterpartyName string) error {
	if counterpartyName == "" {
		return ErrCounterpartyNameIsRequired
	}

	c.counterpartyName = counterpartyName
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = append([]order.Item(nil), items...)
	return nil
}
