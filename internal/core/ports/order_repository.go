package ports

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The same contract is served by the in-memory snapshot deployment and the
// document-store deployment, and is instantiated once per order book
// (purchase and sales).
//
// Lookup misses are reported as absent results, never as errors: GetByID and
// Update return a false flag, Delete returns false. Errors are reserved for
// storage failures. Mutations persist synchronously before returning; a
// failed persistence write is surfaced once and not retried.
type OrderRepository interface {
	// GetAll returns a snapshot copy of every stored order, ordered by id.
	// Mutating the result never affects stored state.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByID retrieves an order by its identifier.
	// Returns false if no order with that id exists.
	GetByID(ctx context.Context, id int) (*order.Order, bool, error)

	// Add persists a new order. When the order carries the zero id the next
	// identifier is derived from the stored collection; a caller-supplied id
	// is trusted as-is. An empty number is generated from the id.
	// Returns the stored record.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update replaces the record with the given id after reconciling its
	// lifecycle dates against the stored state. Returns false and performs
	// no write when the id is absent.
	Update(ctx context.Context, id int, aggregate *order.Order) (*order.Order, bool, error)

	// Delete removes the record with the given id.
	// Returns true iff a record existed and was removed. Deletion is
	// unconditional; cross-entity dependency checks belong to callers.
	Delete(ctx context.Context, id int) (bool, error)

	// Exists reports whether a record with the given id is stored.
	Exists(ctx context.Context, id int) (bool, error)

	// ByStatus returns all orders whose stored status matches the given
	// string, compared case-insensitively.
	ByStatus(ctx context.Context, status string) ([]*order.Order, error)
}
