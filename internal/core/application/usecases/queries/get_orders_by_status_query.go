package queries

import (
	"errors"
	"strings"

	"procurement/internal/pkg/guard"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
	)
	ErrStatusIsRequired = errors.New("status is required")
)

// GetOrdersByStatusQuery retrieves all orders carrying a given status. The
// status is matched case-insensitively and does not need to belong to the
// recognized vocabulary, so orders stored with out-of-vocabulary statuses
// can be listed too.
type GetOrdersByStatusQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders with the given
// status. Validates that the status is not blank.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	if strings.TrimSpace(status) == "" {
		return GetOrdersByStatusQuery{}, ErrStatusIsRequired
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the status to filter by.
func (q GetOrdersByStatusQuery) Status() string {
	return q.status
}
