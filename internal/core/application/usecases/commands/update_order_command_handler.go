package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles the business logic for order updates.
// The repository reconciles lifecycle dates against the stored record, so
// the handler only needs to materialize the incoming replacement.
type UpdateOrderCommandHandler struct {
	orders  ports.OrderRepository
	variant order.Variant
}

// NewUpdateOrderCommandHandler creates a handler for order update operations
// against the given repository.
func NewUpdateOrderCommandHandler(orders ports.OrderRepository, variant order.Variant) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		orders:  orders,
		variant: variant,
	}
}

// Handle processes the order update command and returns the reconciled
// stored order. Returns an ObjectNotFoundError when no order with the given
// id exists.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	incoming := order.RestoreOrder(0, "", cmd.CounterpartyName(), cmd.OrderDate(),
		cmd.Items(), cmd.StatusLabel(), h.variant, order.LifecycleDates{})

	updated, found, err := h.orders.Update(ctx, cmd.OrderID(), incoming)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	return updated, nil
}
