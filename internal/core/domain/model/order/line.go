package order

import (
	"errors"
	"fmt"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when using a Line that was not created
// via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a single position of an order: a product reference, the ordered
// quantity, and the unit price captured at order creation. The price snapshot
// makes the line immune to later catalog price changes. Lines are frozen
// after construction; an order's line set never changes once created.
type Line struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewLine creates an order line with a positive quantity and a snapshot of
// the product's current unit price.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot captured at order creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MultiplyQty(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
