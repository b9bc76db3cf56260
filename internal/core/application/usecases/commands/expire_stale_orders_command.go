package commands

import (
	"errors"
	"time"

	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a request to cancel orders that have
// sat unapproved since before the cutoff, returning their reserved stock.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates the expiry command for the cutoff.
func NewExpireStaleOrdersCommand(cutoff time.Time) (ExpireStaleOrdersCommand, error) {
	if cutoff.IsZero() {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff is required")
	}

	return ExpireStaleOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; orders still awaiting approval
// created before it are expired.
func (c ExpireStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
