package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in pending status with empty lifecycle dates; identity is
// assigned by the repository.
type CreateOrderCommandHandler struct {
	orders  ports.OrderRepository
	variant order.Variant
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations against the given repository.
func NewCreateOrderCommandHandler(orders ports.OrderRepository, variant order.Variant) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orders:  orders,
		variant: variant,
	}
}

// Handle processes the order creation command and returns the stored order
// with its assigned identifier and number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.CounterpartyName(), cmd.OrderDate(), cmd.Items(), h.variant)
	if err != nil {
		return nil, err
	}

	return h.orders.Add(ctx, created)
}
