package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks value objects and entities as created through their
// designated constructor. Embedding a guard in a struct makes zero-value
// instances detectable: a zero-value guard fails Validate, a guard produced
// by NewConstructorGuard passes.
//
// Example:
//
//	type Money struct {
//	    amountMinor int64
//	    guard       guard.ConstructorGuard
//	}
//
//	func NewMoney(amountMinor int64) (Money, error) {
//	    if amountMinor < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amountMinor: amountMinor, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its holder as properly
// constructed. Call it only from constructor functions.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects. For zero-value guards it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
