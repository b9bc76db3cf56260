package queries

import (
	"errors"

	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves every order placed by one buyer, newest
// first. The buyer is identified by email; no other buyer's orders are ever
// included.
//
// Example:
//
//	query, _ := NewGetBuyerOrdersQuery("buyer@example.com")
//	handler := NewGetBuyerOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetBuyerOrdersQuery struct {
	buyerEmail string

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for the given buyer's orders.
func NewGetBuyerOrdersQuery(buyerEmail string) (GetBuyerOrdersQuery, error) {
	if buyerEmail == "" {
		return GetBuyerOrdersQuery{}, errs.NewValueIsRequiredError("buyerEmail is required")
	}

	return GetBuyerOrdersQuery{
		buyerEmail: buyerEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerEmail returns the email identifying the buyer.
func (q GetBuyerOrdersQuery) BuyerEmail() string {
	return q.buyerEmail
}
