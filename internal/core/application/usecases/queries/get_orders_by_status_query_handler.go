package queries

import (
	"context"

	"procurement/internal/core/ports"
)

// GetOrdersByStatusQueryHandler retrieves orders filtered by status through
// the repository port.
type GetOrdersByStatusQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for by-status queries.
func NewGetOrdersByStatusQueryHandler(orders ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orders: orders}
}

// Handle executes the query and returns the matching read models sorted by
// identifier. An unmatched status yields an empty list, not an error.
func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(orders), nil
}
