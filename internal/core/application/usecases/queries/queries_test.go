package queries_test

import (
	"context"
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id int) (*order.Order, bool, error) {
	args := m.Called(ctx, id)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, id int, aggregate *order.Order) (*order.Order, bool, error) {
	args := m.Called(ctx, id, aggregate)
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Bool(1), args.Error(2)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ByStatus(ctx context.Context, status string) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.DateFromString(s)
	require.NoError(t, err)
	return d
}

func storedOrder(t *testing.T, id int, statusLabel string, lifecycle order.LifecycleDates) *order.Order {
	t.Helper()
	item, err := order.NewItem("Office Chair", 2, decimal.RequireFromString("149.90"))
	require.NoError(t, err)

	return order.RestoreOrder(id, order.Number(order.Purchase, id), "Acme GmbH",
		mustDate(t, "2026-08-20"), []order.Item{item}, statusLabel, order.Purchase, lifecycle)
}
