package ports

import (
	"errors"
	"strings"
	"time"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
)

var (
	ErrOrderSearchQueryIsNotConstructed = errors.New(
		"OrderSearchQuery must be created via NewOrderSearchQuery constructor",
	)
)

// Pagination and sorting bounds for order searches.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500

	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"

	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

// OrderSearchQuery is a normalized, bounded filter over the order collection.
// It is a pure value object: construction validates and normalizes every raw
// input, so the data layer only ever sees well-formed filters.
//
// Normalization rules:
//   - blank optional filters mean "no filter", not an empty-string match
//   - the status filter is trimmed, uppercased and validated against the enum
//   - time bounds are RFC 3339 instants, inclusive on both ends
//   - page < 0 becomes 0; size <= 0 becomes DefaultPageSize; size above
//     MaxPageSize is clamped to MaxPageSize
//   - unrecognized sort fields fall back to updatedAt, unrecognized sort
//     directions to descending
type OrderSearchQuery struct { //nolint:recvcheck //using for validation
	orderIDContains    string
	customerIDContains string
	status             *order.Status
	updatedFrom        *time.Time
	updatedTo          *time.Time
	page               int
	size               int
	sortBy             string
	sortDir            string

	isConstructed bool
}

// NewOrderSearchQuery builds a normalized search query from raw filter inputs.
// Malformed status or timestamp values fail with a validation error before any
// persistence access; out-of-range pagination and unknown sort inputs are
// normalized rather than rejected.
func NewOrderSearchQuery(
	orderIDContains string,
	customerIDContains string,
	status string,
	updatedFrom string,
	updatedTo string,
	page int,
	size int,
	sortBy string,
	sortDir string,
) (OrderSearchQuery, error) {
	query := OrderSearchQuery{
		orderIDContains:    strings.TrimSpace(orderIDContains),
		customerIDContains: strings.TrimSpace(customerIDContains),
		isConstructed:      true,
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setUpdatedFrom(updatedFrom),
		query.setUpdatedTo(updatedTo),
	); err != nil {
		return OrderSearchQuery{}, err
	}

	query.page = max(page, 0)
	switch {
	case size <= 0:
		query.size = DefaultPageSize
	case size > MaxPageSize:
		query.size = MaxPageSize
	default:
		query.size = size
	}

	query.sortBy = normalizeSortBy(sortBy)
	query.sortDir = normalizeSortDir(sortDir)

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q OrderSearchQuery) Validate() error {
	if !q.isConstructed {
		return ErrOrderSearchQueryIsNotConstructed
	}
	return nil
}

// OrderIDContains returns the case-insensitive order id substring filter.
// Empty means no filter.
func (q OrderSearchQuery) OrderIDContains() string {
	return q.orderIDContains
}

// CustomerIDContains returns the case-insensitive customer id substring filter.
// Empty means no filter.
func (q OrderSearchQuery) CustomerIDContains() string {
	return q.customerIDContains
}

// Status returns the exact status filter, or nil when no filter applies.
func (q OrderSearchQuery) Status() *order.Status {
	return q.status
}

// UpdatedFrom returns the inclusive lower bound on updatedAt, or nil.
func (q OrderSearchQuery) UpdatedFrom() *time.Time {
	return q.updatedFrom
}

// UpdatedTo returns the inclusive upper bound on updatedAt, or nil.
func (q OrderSearchQuery) UpdatedTo() *time.Time {
	return q.updatedTo
}

// Page returns the zero-based page index.
func (q OrderSearchQuery) Page() int {
	return q.page
}

// Size returns the page size, always within (0, MaxPageSize].
func (q OrderSearchQuery) Size() int {
	return q.size
}

// SortBy returns the sort field, either SortByCreatedAt or SortByUpdatedAt.
func (q OrderSearchQuery) SortBy() string {
	return q.sortBy
}

// SortDir returns the sort direction, either SortDirAsc or SortDirDesc.
func (q OrderSearchQuery) SortDir() string {
	return q.sortDir
}

func (q *OrderSearchQuery) setStatus(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	status, err := order.StatusFromString(raw)
	if err != nil {
		return err
	}

	q.status = &status
	return nil
}

func (q *OrderSearchQuery) setUpdatedFrom(raw string) error {
	instant, err := parseInstant("updatedFrom", raw)
	if err != nil {
		return err
	}
	q.updatedFrom = instant
	return nil
}

func (q *OrderSearchQuery) setUpdatedTo(raw string) error {
	instant, err := parseInstant("updatedTo", raw)
	if err != nil {
		return err
	}
	q.updatedTo = instant
	return nil
}

func parseInstant(paramName, raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	instant, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	instant = instant.UTC()
	return &instant, nil
}

func normalizeSortBy(raw string) string {
	switch strings.TrimSpace(raw) {
	case SortByCreatedAt:
		return SortByCreatedAt
	case SortByUpdatedAt:
		return SortByUpdatedAt
	default:
		return SortByUpdatedAt
	}
}

func normalizeSortDir(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SortDirAsc:
		return SortDirAsc
	case SortDirDesc:
		return SortDirDesc
	default:
		return SortDirDesc
	}
}
