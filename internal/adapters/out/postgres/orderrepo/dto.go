// Package orderrepo persists order aggregates in PostgreSQL. It maps the
// aggregate onto a single row per order: line items are embedded as a JSON
// column and the four lifecycle dates are nullable timestamp columns, so one
// repository call is always one statement against one document.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderDTO represents the database row for an order aggregate. Status is
// indexed for the by-status listing; the status string is stored verbatim,
// including out-of-vocabulary values.
type OrderDTO struct {
	ID               int        `gorm:"primaryKey"`
	Number           string     `gorm:"size:32"`
	CounterpartyName string
	OrderDate        time.Time  `gorm:"type:date"`
	Items            string     `gorm:"type:jsonb"`
	Status           string     `gorm:"size:64;index"`
	ShippingDate     *time.Time `gorm:"type:date"`
	ReceivedDate     *time.Time `gorm:"type:date"`
	ReturnedDate     *time.Time `gorm:"type:date"`
	CancelledDate    *time.Time `gorm:"type:date"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSON shape of a single line item inside the items column.
// Unit prices are stored as decimal strings to keep them exact.
type itemDTO struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
		})
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode order items: %w", err)
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		Number:           aggregate.Number(),
		CounterpartyName: aggregate.CounterpartyName(),
		OrderDate:        aggregate.OrderDate().Time(),
		Items:            string(encoded),
		Status:           aggregate.StatusLabel(),
		ShippingDate:     toColumn(aggregate.ShippingDate()),
		ReceivedDate:     toColumn(aggregate.ReceivedDate()),
		ReturnedDate:     toColumn(aggregate.ReturnedDate()),
		CancelledDate:    toColumn(aggregate.CancelledDate()),
	}, nil
}

// toDomain converts a database row back to an order aggregate using
// RestoreOrder, trusting the stored values. A malformed items column decodes
// to an empty item list rather than failing the read.
func toDomain(dto OrderDTO, variant order.Variant) *order.Order {
	var items []itemDTO
	_ = json.Unmarshal([]byte(dto.Items), &items)

	restored := make([]order.Item, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			price = decimal.Zero
		}
		restored = append(restored, order.RestoreItem(item.Name, item.Quantity, price))
	}

	orderDate, _ := kernel.DecodeDate(dto.OrderDate)
	lifecycle := order.LifecycleDates{
		Shipping:  fromColumn(dto.ShippingDate),
		Received:  fromColumn(dto.ReceivedDate),
		Returned:  fromColumn(dto.ReturnedDate),
		Cancelled: fromColumn(dto.CancelledDate),
	}

	return order.RestoreOrder(dto.ID, dto.Number, dto.CounterpartyName, orderDate,
		restored, dto.Status, variant, lifecycle)
}

func toColumn(date *kernel.Date) *time.Time {
	if date == nil {
		return nil
	}
	t := date.Time()
	return &t
}

func fromColumn(t *time.Time) *kernel.Date {
	if t == nil {
		return nil
	}
	d, ok := kernel.DecodeDate(*t)
	if !ok {
		return nil
	}
	return &d
}
