package queries

import (
	"context"

	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// GetOrderByIDQueryHandler retrieves a single order through the repository
// port.
type GetOrderByIDQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
func NewGetOrderByIDQueryHandler(orders ports.OrderRepository) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{orders: orders}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given id exists.
func (h GetOrderByIDQueryHandler) Handle(ctx context.Context, query GetOrderByIDQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	stored, found, err := h.orders.GetByID(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	if !found {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	return NewOrderResponse(stored), nil
}
