package queries

import (
	"errors"
	"strings"

	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full tracking history.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order lookup.
// The order id must be non-blank.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderQuery{
		orderID: trimmed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() string {
	return q.orderID
}
