// Package document converts order aggregates to and from a storage-neutral
// field map. The mapping is the persistence boundary's single source of truth
// for field names and encodings: the snapshot file and any document-oriented
// store both speak this representation.
//
// The reverse direction is tolerant by design. Stored data may carry dates as
// ISO strings or native timestamps, and numbers as integers, floats, or
// decimal strings, depending on how a store round-trips values. Malformed
// fields fail closed individually (decoded as absent or zero) instead of
// aborting the whole read.
package document

import (
	"encoding/json"
	"strconv"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Document is a storage-neutral field map representation of an order.
type Document = map[string]any

// FromOrder converts an order aggregate to its document representation.
// Dates are encoded as ISO calendar-date strings; nil lifecycle dates are
// omitted. Unit prices are encoded as decimal strings to keep them exact.
func FromOrder(o *order.Order) Document {
	items := make([]any, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, Document{
			"name":      item.Name(),
			"quantity":  item.Quantity(),
			"unitPrice": item.UnitPrice().String(),
		})
	}

	doc := Document{
		"id":               o.ID(),
		"number":           o.Number(),
		"counterpartyName": o.CounterpartyName(),
		"orderDate":        o.OrderDate().String(),
		"items":            items,
		"status":           o.StatusLabel(),
	}

	putDate(doc, "shippingDate", o.ShippingDate())
	putDate(doc, "receivedDate", o.ReceivedDate())
	putDate(doc, "returnedDate", o.ReturnedDate())
	putDate(doc, "cancelledDate", o.CancelledDate())

	return doc
}

// ToOrder converts a document back into an order aggregate for the given
// order book. The conversion is total: missing or malformed fields decode to
// their absent values, a missing items field decodes to an empty sequence,
// and the status string is taken verbatim.
func ToOrder(doc Document, variant order.Variant) *order.Order {
	orderDate, _ := kernel.DecodeDate(doc["orderDate"])

	lifecycle := order.LifecycleDates{
		Shipping:  decodeOptionalDate(doc["shippingDate"]),
		Received:  decodeOptionalDate(doc["receivedDate"]),
		Returned:  decodeOptionalDate(doc["returnedDate"]),
		Cancelled: decodeOptionalDate(doc["cancelledDate"]),
	}

	return order.RestoreOrder(
		decodeInt(doc["id"]),
		decodeString(doc["number"]),
		decodeString(doc["counterpartyName"]),
		orderDate,
		decodeItems(doc["items"]),
		decodeString(doc["status"]),
		variant,
		lifecycle,
	)
}

func putDate(doc Document, key string, date *kernel.Date) {
	if date != nil {
		doc[key] = date.String()
	}
}

func decodeOptionalDate(v any) *kernel.Date {
	d, ok := kernel.DecodeDate(v)
	if !ok {
		return nil
	}
	return &d
}

func decodeItems(v any) []order.Item {
	raw, ok := v.([]any)
	if !ok {
		return []order.Item{}
	}

	items := make([]order.Item, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, order.RestoreItem(
			decodeString(fields["name"]),
			decodeInt(fields["quantity"]),
			decodeDecimal(fields["unitPrice"]),
		))
	}
	return items
}

func decodeString(v any) string {
	s, _ := v.(string)
	return s
}

// decodeInt normalizes the numeric encodings a store may hand back for an
// integer field. Anything unparseable decodes to 0.
func decodeInt(v any) int {
	switch val := v.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		return int(val)
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// decodeDecimal normalizes the numeric encodings a store may hand back for a
// decimal field. Anything unparseable decodes to zero.
func decodeDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case decimal.Decimal:
		return val
	case string:
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(val)
	case int:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
