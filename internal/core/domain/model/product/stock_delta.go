package product

import (
	"errors"
	"fmt"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrStockDeltaIsNotConstructed is returned when using a StockDelta that was
// not created via the NewStockDelta constructor.
var ErrStockDeltaIsNotConstructed = errors.New("StockDelta must be created via NewStockDelta constructor")

// StockDelta is a (product, quantity) pair describing one stock movement.
// Ledger operations take a batch of deltas and apply them as a single unit:
// either every delta lands or none does.
type StockDelta struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewStockDelta creates a StockDelta. Quantity must be positive; the
// direction of the movement is chosen by the ledger operation the delta is
// passed to.
func NewStockDelta(productID kernel.UUID, quantity int) (StockDelta, error) {
	delta := StockDelta{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delta.setProductID(productID),
		delta.setQuantity(quantity),
	); err != nil {
		return StockDelta{}, err
	}

	return delta, nil
}

// ProductID returns the product the delta applies to.
func (d StockDelta) ProductID() kernel.UUID {
	return d.productID
}

// Quantity returns the number of units moved.
func (d StockDelta) Quantity() int {
	return d.quantity
}

func (d *StockDelta) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	d.productID = productID
	return nil
}

func (d *StockDelta) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	d.quantity = quantity
	return nil
}

// Validate checks that the StockDelta was created through its constructor.
func (d StockDelta) Validate() error {
	return d.guard.Validate(ErrStockDeltaIsNotConstructed)
}
