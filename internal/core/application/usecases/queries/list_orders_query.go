package queries

import (
	"errors"

	"ordertracking/internal/core/ports"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a filtered, sorted page of orders. All filter
// normalization happens in the embedded search query, so a constructed
// ListOrdersQuery is always safe to hand to the data layer.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	search ports.OrderSearchQuery

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged listing query from a normalized search.
func NewListOrdersQuery(search ports.OrderSearchQuery) (ListOrdersQuery, error) {
	if err := search.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the normalized filter, sort and pagination settings.
func (q ListOrdersQuery) Search() ports.OrderSearchQuery {
	return q.search
}
