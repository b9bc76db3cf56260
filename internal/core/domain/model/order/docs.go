// Package order contains the Order aggregate of the marketplace domain.
//
// Order is the aggregate root: it owns its lines (product reference,
// quantity, price snapshot), the embedded shipping address, and the status
// lifecycle. Status transitions are governed by an explicit transition
// table; PendingApproval is the initial state and Delivered/Cancelled are
// terminal. Stock side effects of the lifecycle (reservation at creation,
// release on cancellation) are driven by the application layer against the
// inventory ledger within the same transaction.
package order
