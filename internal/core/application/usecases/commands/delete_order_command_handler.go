package commands

import (
	"context"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles the business logic for order removal.
type DeleteOrderCommandHandler struct {
	orders ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order deletion
// operations against the given repository.
func NewDeleteOrderCommandHandler(orders ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{orders: orders}
}

// Handle processes the order deletion command. Returns an
// ObjectNotFoundError when no order with the given id exists.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	found, err := h.orders.Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	return nil
}
