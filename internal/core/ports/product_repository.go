package ports

import (
	"context"

	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// InventoryLedger applies batches of stock movements atomically within the
// ambient transaction. Either every delta in the batch lands or none does.
type InventoryLedger interface {
	// Reserve removes the given quantities from stock. A product with fewer
	// units on hand than its delta asks for fails the whole batch with
	// product.InsufficientStockError.
	Reserve(ctx context.Context, deltas []product.StockDelta) error

	// Release returns the given quantities to stock. Releases are not
	// reconciled against prior reservations; callers release only what they
	// reserved.
	Release(ctx context.Context, deltas []product.StockDelta) error
}
