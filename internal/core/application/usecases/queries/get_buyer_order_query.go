package queries

import (
	"errors"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/guard"
)

var ErrGetBuyerOrderQueryIsNotConstructed = errors.New(
	"GetBuyerOrderQuery must be created via NewGetBuyerOrderQuery constructor",
)

// GetBuyerOrderQuery retrieves a single order by its identifier for the buyer
// detail view.
type GetBuyerOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrderQuery creates a query for one order.
func NewGetBuyerOrderQuery(orderID kernel.UUID) (GetBuyerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetBuyerOrderQuery{}, err
	}

	return GetBuyerOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetBuyerOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
