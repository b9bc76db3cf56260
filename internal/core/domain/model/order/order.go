package order

import (
	"errors"
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/pkg/errs"
	"ecobazaar/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a buyer's purchase. It is the aggregate root that owns the
// order lines and governs the status lifecycle from creation through
// delivery or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and buyer reference
//   - Must contain at least one line; lines are frozen after creation
//   - Total price equals the sum of line subtotals captured at creation
//     time and never changes afterwards
//   - Status changes only through the transition table in status.go
//
// Private fields keep the aggregate encapsulated; all mutation goes through
// Cancel and AdvanceTo.
type Order struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// buyerID references the buyer who placed the order (not owned)
	buyerID kernel.UUID

	// shippingAddress is the destination captured at creation
	shippingAddress Address

	// lines are the ordered positions with price snapshots
	lines []Line

	// totalPrice is derived from the lines once, at creation
	totalPrice kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp, immutable
	createdAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PendingApproval status.
// The total price is computed from the line snapshots here and never again:
// later catalog price changes do not affect existing orders.
//
// Parameters:
//   - id: unique identifier for the order
//   - buyerID: identifier of the buyer placing the order
//   - shippingAddress: validated destination address
//   - lines: at least one validated order line
//
// Returns the constructed order, or a validation error if any input is
// invalid.
func NewOrder(id kernel.UUID, buyerID kernel.UUID, shippingAddress Address, lines []Line) (*Order, error) {
	order := &Order{
		status:    PendingApproval,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setShippingAddress(shippingAddress),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.totalPrice = sumSubtotals(order.lines)
	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// persisted status, total, and creation time. The restored aggregate behaves
// identically to one created through NewOrder.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	shippingAddress Address,
	lines []Line,
	totalPrice kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setShippingAddress(shippingAddress),
		order.setLines(lines),
		order.setTotalPrice(totalPrice),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Call it when reconstructing orders from persistence to guarantee data
// integrity.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identifier of the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// ShippingAddress returns the destination captured at creation.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// Lines returns the order's positions. The returned slice is a copy to keep
// the line set frozen.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// TotalPrice returns the total computed at creation time.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Cancel moves the order to Cancelled.
//
// The transition table permits cancellation only from PendingApproval and
// Approved; any other origin fails with InvalidTransitionError. Releasing
// the reserved stock of the order's lines is the caller's responsibility
// and must happen in the same transaction as persisting the new status.
func (o *Order) Cancel() error {
	return o.AdvanceTo(Cancelled)
}

// AdvanceTo moves the order to the requested status after validating the
// transition against the state machine. Transitions leaving a terminal
// status, self-transitions, and anything else absent from the table fail
// with InvalidTransitionError and leave the order unchanged.
func (o *Order) AdvanceTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setShippingAddress(shippingAddress Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// sumSubtotals folds the line subtotals into the order total.
func sumSubtotals(lines []Line) kernel.Money {
	total, _ := kernel.NewMoneyFromMinor(0)
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
