package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

var _ ports.OrderRepository = &GormOrderRepository{}

// GormOrderRepository implements the order repository on PostgreSQL using
// GORM. Each operation issues statements against the orders table only;
// there are no cross-row transactions beyond id allocation on insert.
type GormOrderRepository struct {
	db         *gorm.DB
	variant    order.Variant
	reconciler services.LifecycleReconciler
}

// NewGormOrderRepository creates a new GORM order repository for the given
// order variant.
func NewGormOrderRepository(db *gorm.DB, variant order.Variant, reconciler services.LifecycleReconciler) (*GormOrderRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}

	return &GormOrderRepository{db: db, variant: variant, reconciler: reconciler}, nil
}

// Migrate creates or updates the orders table schema.
func (r *GormOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderDTO{})
}

// GetAll retrieves all orders sorted by identifier.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos), nil
}

// GetByID retrieves an order by identifier. The found flag is false when no
// such row exists.
func (r *GormOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, bool, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return toDomain(dto, r.variant), true, nil
}

// Add inserts a new order. An order without an identifier is assigned the
// next sequential id and the matching number inside the insert transaction;
// a caller-supplied id is trusted as-is, with the number generated from it
// when empty.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if aggregate == nil {
		return nil, fmt.Errorf("order must not be nil")
	}

	stored := aggregate.Clone()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if stored.ID() == 0 {
			var maxID int
			row := tx.Model(&OrderDTO{}).Select("COALESCE(MAX(id), 0)").Row()
			if err := row.Scan(&maxID); err != nil {
				return err
			}

			id := maxID + 1
			if err := stored.AssignIdentity(id, order.Number(r.variant, id)); err != nil {
				return err
			}
		} else if stored.Number() == "" {
			stored = order.RestoreOrder(stored.ID(), order.Number(r.variant, stored.ID()),
				stored.CounterpartyName(), stored.OrderDate(), stored.Items(),
				stored.StatusLabel(), r.variant, stored.Lifecycle())
		}

		dto, err := fromDomain(stored)
		if err != nil {
			return err
		}
		return tx.Create(&dto).Error
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// Update replaces the stored order's mutable fields with the incoming ones,
// reconciling lifecycle dates against the stored row. The found flag is
// false when no row with the given id exists.
func (r *GormOrderRepository) Update(ctx context.Context, id int, incoming *order.Order) (*order.Order, bool, error) {
	if incoming == nil {
		return nil, false, fmt.Errorf("order must not be nil")
	}

	var reconciled *order.Order
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		if err := tx.First(&dto, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		reconciled = r.reconciler.Reconcile(toDomain(dto, r.variant), incoming, kernel.Today())
		updated, err := fromDomain(reconciled)
		if err != nil {
			return err
		}
		return tx.Save(&updated).Error
	})
	if err != nil {
		return nil, found, err
	}
	if !found {
		return nil, false, nil
	}

	return reconciled, true, nil
}

// Delete removes the order with the given identifier. The found flag is
// false when no such row exists.
func (r *GormOrderRepository) Delete(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// Exists reports whether an order with the given identifier is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ByStatus retrieves all orders whose status matches the given one, compared
// case-insensitively, sorted by identifier.
func (r *GormOrderRepository) ByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("LOWER(status) = LOWER(?)", status).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos), nil
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) []*order.Order {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto, r.variant))
	}
	return orders
}
