// Package memstore is the in-memory deployment of the order repository.
//
// The whole collection lives in a map guarded by a reader/writer lock, and
// every successful mutation is synchronously written through a SnapshotStore
// before the call returns. The snapshot is the only durable state: on
// construction the repository replays it through the document mapper, so a
// restart recovers exactly what the last mutation persisted.
//
// A failed snapshot write does not roll the in-memory mutation back. The
// error is surfaced to the caller once and logged; memory and disk diverge
// until the next successful write.
package memstore

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"procurement/internal/adapters/out/document"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

var _ ports.OrderRepository = &Repository{}

// Repository keeps orders in memory and mirrors them into a snapshot store.
type Repository struct {
	mu         sync.RWMutex
	orders     map[int]*order.Order
	variant    order.Variant
	reconciler services.LifecycleReconciler
	snapshots  SnapshotStore
	logger     *slog.Logger
}

// NewRepository creates a repository for the given order variant, loading the
// previous snapshot from the store. Documents that fail to decode are dropped
// with a warning rather than failing startup.
func NewRepository(
	variant order.Variant,
	snapshots SnapshotStore,
	reconciler services.LifecycleReconciler,
	logger *slog.Logger,
) (*Repository, error) {
	if snapshots == nil {
		return nil, fmt.Errorf("snapshot store must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &Repository{
		orders:     make(map[int]*order.Order),
		variant:    variant,
		reconciler: reconciler,
		snapshots:  snapshots,
		logger:     logger.With("component", "memstore"),
	}

	docs, err := snapshots.Load()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	for _, doc := range docs {
		restored := document.ToOrder(doc, variant)
		if restored.ID() == 0 {
			r.logger.Warn("dropping snapshot document without id")
			continue
		}
		r.orders[restored.ID()] = restored
	}

	return r, nil
}

// GetAll returns all orders sorted by identifier.
func (r *Repository) GetAll(ctx context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(), nil
}

// GetByID returns the order with the given identifier. The found flag is
// false when no such order exists.
func (r *Repository) GetByID(ctx context.Context, id int) (*order.Order, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, false, nil
	}
	return stored.Clone(), true, nil
}

// Add stores a new order. An order without an identifier is assigned the next
// sequential id and the matching number; a caller-supplied id is trusted
// as-is, with the number generated from it when empty.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if aggregate == nil {
		return nil, fmt.Errorf("order must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := aggregate.Clone()
	if stored.ID() == 0 {
		id := order.NextID(r.sortedLocked())
		if err := stored.AssignIdentity(id, order.Number(r.variant, id)); err != nil {
			return nil, err
		}
	} else if stored.Number() == "" {
		stored = order.RestoreOrder(stored.ID(), order.Number(r.variant, stored.ID()),
			stored.CounterpartyName(), stored.OrderDate(), stored.Items(),
			stored.StatusLabel(), r.variant, stored.Lifecycle())
	}
	r.orders[stored.ID()] = stored

	if err := r.persistLocked(ctx); err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update replaces the mutable fields of the stored order with the incoming
// ones and reconciles the lifecycle dates against the stored record. The
// found flag is false when no order with the given id exists, in which case
// nothing is written.
func (r *Repository) Update(ctx context.Context, id int, incoming *order.Order) (*order.Order, bool, error) {
	if incoming == nil {
		return nil, false, fmt.Errorf("order must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, ok := r.orders[id]
	if !ok {
		return nil, false, nil
	}

	reconciled := r.reconciler.Reconcile(previous, incoming, kernel.Today())
	r.orders[id] = reconciled

	if err := r.persistLocked(ctx); err != nil {
		return nil, true, err
	}
	return reconciled.Clone(), true, nil
}

// Delete removes the order with the given identifier. The found flag is false
// when no such order exists, in which case nothing is written.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return false, nil
	}
	delete(r.orders, id)

	if err := r.persistLocked(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Exists reports whether an order with the given identifier is stored.
func (r *Repository) Exists(ctx context.Context, id int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.orders[id]
	return ok, nil
}

// ByStatus returns all orders whose status label matches the given one,
// compared case-insensitively, sorted by identifier.
func (r *Repository) ByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*order.Order
	for _, stored := range r.orders {
		if strings.EqualFold(stored.StatusLabel(), status) {
			matched = append(matched, stored.Clone())
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID() < matched[j].ID() })
	return matched, nil
}

// sortedLocked returns clones of all stored orders in id order.
// Callers must hold at least the read lock.
func (r *Repository) sortedLocked() []*order.Order {
	all := make([]*order.Order, 0, len(r.orders))
	for _, stored := range r.orders {
		all = append(all, stored.Clone())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	return all
}

// persistLocked writes the full collection through the snapshot store.
// Callers must hold the write lock.
func (r *Repository) persistLocked(ctx context.Context) error {
	docs := make([]document.Document, 0, len(r.orders))
	for _, stored := range r.sortedLocked() {
		docs = append(docs, document.FromOrder(stored))
	}

	if err := r.snapshots.Save(docs); err != nil {
		r.logger.ErrorContext(ctx, "snapshot write failed", "error", err)
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
