package queries

import (
	"errors"

	"ecobazaar/internal/pkg/guard"
)

var ErrGetSellerOrdersQueryIsNotConstructed = errors.New(
	"GetSellerOrdersQuery must be created via NewGetSellerOrdersQuery constructor",
)

// GetSellerOrdersQuery retrieves orders for the seller dashboard. The active
// variant returns only orders still in flight, oldest first, so sellers work
// the queue in arrival order. The history variant returns everything, newest
// first.
type GetSellerOrdersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetSellerOrdersQuery creates a seller dashboard query. Pass true for the
// active work queue, false for the full history.
func NewGetSellerOrdersQuery(activeOnly bool) GetSellerOrdersQuery {
	return GetSellerOrdersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrdersQueryIsNotConstructed)
}

// ActiveOnly reports whether the query is restricted to in-flight orders.
func (q GetSellerOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}
