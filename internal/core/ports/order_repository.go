// Package ports defines the persistence contracts of the order lifecycle
// engine. These interfaces sit between the application layer and the
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with a row-level lock held
	// for the duration of the ambient transaction. Concurrent status
	// transitions on the same order serialize on this lock.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves orders still awaiting approval that were
	// created before the cutoff. Used by the stale-order expiry job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
