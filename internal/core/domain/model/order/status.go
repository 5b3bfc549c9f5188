package order

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Variant distinguishes the two mirrored order books: purchase orders placed
// with vendors and sales orders taken from customers. The lifecycle mechanics
// are identical; the variants differ in their status vocabulary and in the
// order-number prefix.
type Variant int

const (
	// Purchase is the vendor-facing order book ("PO-" numbers).
	Purchase Variant = iota

	// Sales is the customer-facing order book ("SO-" numbers).
	Sales
)

// String returns the variant name for logs and configuration.
func (v Variant) String() string {
	if v == Sales {
		return "sales"
	}
	return "purchase"
}

// NumberPrefix returns the order-number prefix for the variant.
func (v Variant) NumberPrefix() string {
	if v == Sales {
		return "SO"
	}
	return "PO"
}

// Status represents the lifecycle state of an order.
//
// State transitions (purchase vocabulary):
//
//	pending <──> shipping ──> received <──> returned
//	    │            │            │            │
//	    └────────────┴─────┬──────┴────────────┘
//	                       v
//	                   cancelled
//
// Cancellation is reachable from every state and is not terminal: the stored
// record keeps enough history (receivedDate, returnedDate) for an order to be
// moved back out of cancelled by a subsequent replacement.
//
// Status is a closed enumeration. Strings outside the vocabulary parse to
// Unknown; an Unknown target is stored verbatim but triggers no lifecycle
// date bookkeeping, which is a deliberate, tested branch rather than an error.
type Status int

const (
	// Unknown represents a status string outside the closed vocabulary.
	// This value (0) also helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Shipping indicates the goods are in transit.
	Shipping

	// Received indicates the goods arrived ("delivered" in the sales vocabulary).
	Received

	// Returned indicates received goods were sent back ("refunded" in the sales vocabulary).
	Returned

	// Cancelled indicates the order was called off.
	Cancelled
)

// getStatusLabels returns the per-variant status vocabulary.
// All labels are lower case; stored statuses are normalized to these spellings.
func getStatusLabels(v Variant) map[Status]string {
	if v == Sales {
		return map[Status]string{
			Pending:   "pending",
			Shipping:  "shipping",
			Received:  "delivered",
			Returned:  "refunded",
			Cancelled: "cancelled",
		}
	}
	return map[Status]string{
		Pending:   "pending",
		Shipping:  "shipping",
		Received:  "received",
		Returned:  "returned",
		Cancelled: "cancelled",
	}
}

// ParseStatus matches a status string against the variant's vocabulary.
// Matching is case-insensitive. Returns (Unknown, false) for strings outside
// the closed set; the caller decides whether to reject or store them verbatim.
func ParseStatus(v Variant, s string) (Status, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, label := range getStatusLabels(v) {
		if label == needle {
			return status, true
		}
	}
	return Unknown, false
}

// Label returns the canonical lower-case spelling of the status in the
// variant's vocabulary. Unknown has no spelling and returns the empty string.
func (s Status) Label(v Variant) string {
	return getStatusLabels(v)[s]
}

// String returns the purchase-vocabulary name of the status, or "unknown".
// For variant-aware rendering use Label.
func (s Status) String() string {
	if label, ok := getStatusLabels(Purchase)[s]; ok {
		return label
	}
	return "unknown"
}

// Validate checks if the Status value is inside the closed vocabulary.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusLabels(Purchase)[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
