// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models mapped from the order aggregate.
package queries

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderResponse represents an order in the read model. Dates are rendered as
// ISO calendar-date strings; absent lifecycle dates are omitted. The total
// price is derived from the line items.
type OrderResponse struct {
	ID               int            `json:"id"`
	Number           string         `json:"number"`
	CounterpartyName string         `json:"counterpartyName"`
	OrderDate        string         `json:"orderDate"`
	Items            []ItemResponse `json:"items"`
	Status           string         `json:"status"`
	TotalPrice       string         `json:"totalPrice"`
	ShippingDate     *string        `json:"shippingDate,omitempty"`
	ReceivedDate     *string        `json:"receivedDate,omitempty"`
	ReturnedDate     *string        `json:"returnedDate,omitempty"`
	CancelledDate    *string        `json:"cancelledDate,omitempty"`
}

// ItemResponse represents a single line item in the read model. The unit
// price and line total are rendered as decimal strings.
type ItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// NewOrderResponse maps an order aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemResponse{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			LineTotal: item.LineTotal().String(),
		})
	}

	return OrderResponse{
		ID:               o.ID(),
		Number:           o.Number(),
		CounterpartyName: o.CounterpartyName(),
		OrderDate:        o.OrderDate().String(),
		Items:            items,
		Status:           o.StatusLabel(),
		TotalPrice:       o.TotalPrice().String(),
		ShippingDate:     dateString(o.ShippingDate()),
		ReceivedDate:     dateString(o.ReceivedDate()),
		ReturnedDate:     dateString(o.ReturnedDate()),
		CancelledDate:    dateString(o.CancelledDate()),
	}
}

// NewOrderResponses maps a slice of order aggregates to their read models.
func NewOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}

func dateString(date *kernel.Date) *string {
	if date == nil {
		return nil
	}
	s := date.String()
	return &s
}
