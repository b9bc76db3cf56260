package queries

import (
	"errors"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/guard"
)

var ErrGetSellerOrderQueryIsNotConstructed = errors.New(
	"GetSellerOrderQuery must be created via NewGetSellerOrderQuery constructor",
)

// GetSellerOrderQuery retrieves a single order by its identifier for the
// seller detail view.
type GetSellerOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerOrderQuery creates a query for one order.
func NewGetSellerOrderQuery(orderID kernel.UUID) (GetSellerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetSellerOrderQuery{}, err
	}

	return GetSellerOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetSellerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
