package commands

import (
	"errors"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)

	// ErrNotOrderOwner indicates that the requester is not the buyer who
	// placed the order.
	ErrNotOrderOwner = errors.New("order does not belong to the requester")
)

// CancelOrderCommand represents a buyer's request to cancel their own order.
// The requester is identified explicitly by email and checked against the
// order's buyer; a mismatch is rejected with ErrNotOrderOwner.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requesterEmail string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order on behalf of
// the requester.
func NewCancelOrderCommand(orderID kernel.UUID, requesterEmail string) (CancelOrderCommand, error) {
	cancelCommand := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setRequesterEmail(requesterEmail),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterEmail returns the email of the user requesting cancellation.
func (c CancelOrderCommand) RequesterEmail() string {
	return c.requesterEmail
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setRequesterEmail(requesterEmail string) error {
	if requesterEmail == "" {
		return errs.NewValueIsRequiredError("requesterEmail is required")
	}

	c.requesterEmail = requesterEmail
	return nil
}
