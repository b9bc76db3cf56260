package order

import (
	"fmt"

	"ecobazaar/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders
// always follow the buyer/seller workflow.
//
// State transitions:
//
//	PendingApproval ──> Approved ──> Shipped ──> Delivered
//	       │                │
//	       └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingApproval is the initial status of a newly created order,
	// waiting for the seller to approve it.
	PendingApproval

	// Approved indicates the seller accepted the order.
	Approved

	// Shipped indicates the order left the seller's warehouse.
	Shipped

	// Delivered indicates the order reached the buyer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled by the buyer or the
	// seller and its stock was released. Terminal.
	Cancelled
)

// ErrInvalidStatusValue is returned when a status string from the outside
// world does not name any recognized status.
var ErrInvalidStatusValue = errs.NewValueIsInvalidError("status value is not recognized")

// InvalidTransitionError reports a status change that the state machine
// does not permit.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition from %s to %s is not allowed", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// getStatusStrings returns the wire representation of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Cancelled:       "CANCELLED",
	}
}

// allowedTransitions is the single source of truth for the order state
// machine: each status maps to the set of statuses it may move to.
// Terminal statuses map to an empty set.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		PendingApproval: {Approved, Cancelled},
		Approved:        {Shipped, Cancelled},
		Shipped:         {Delivered},
		Delivered:       {},
		Cancelled:       {},
	}
}

// StatusFromString parses the wire representation of a status
// (e.g. "PENDING_APPROVAL"). Returns ErrInvalidStatusValue for anything
// that does not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, ErrInvalidStatusValue
}

// Validate checks that the Status holds one of the recognized values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table and returns
// the new status. Any transition absent from the table, including
// self-transitions and anything leaving a terminal status, fails with
// InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}
