package kernel

import (
	"fmt"

	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoneyFromMinor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromMinor")

// Money is an immutable monetary amount held in minor units (cents).
// Storing prices as integers avoids floating point drift when computing
// order totals. Negative amounts are rejected at construction, so every
// arithmetic result built from valid Money values stays non-negative.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoneyFromMinor(1999) // 19.99
//	subtotal := unitPrice.MultiplyQty(3)           // 59.97
type Money struct { //nolint:recvcheck //using for validation
	amountMinor int64
	guard       guard.ConstructorGuard
}

// NewMoneyFromMinor creates a Money amount from minor units.
// The amount must be non-negative.
func NewMoneyFromMinor(amountMinor int64) (Money, error) {
	if amountMinor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amountMinor),
		)
	}

	return Money{
		amountMinor: amountMinor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money value was created through NewMoneyFromMinor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// AmountMinor returns the amount in minor units.
func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

// MultiplyQty returns the amount multiplied by a quantity.
func (m Money) MultiplyQty(qty int) Money {
	return Money{
		amountMinor: m.amountMinor * int64(qty),
		guard:       guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amountMinor: m.amountMinor + other.amountMinor,
		guard:       guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amountMinor == other.amountMinor
}

// String renders the amount with two decimal places, e.g. "19.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amountMinor/100, m.amountMinor%100)
}
