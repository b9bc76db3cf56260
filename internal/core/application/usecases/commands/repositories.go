// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ecobazaar/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// InventoryLedgerFactory provides access to the inventory ledger within a transaction.
	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	// PlaceOrderUoW manages transactions for order placement. Placement reads
	// users and products, reserves stock and persists the new order, all
	// inside one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   buyer, _ := uow.UserRepository().GetByEmail(ctx, email)
	//   // ... reserve stock, add order
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		UserRepoFactory
		InventoryLedgerFactory
	}

	// PlaceOrderUoWFactory creates new placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// CancelOrderUoW manages transactions for buyer-initiated cancellation.
	// Cancellation loads the order and its buyer, releases stock and persists
	// the terminal state atomically.
	CancelOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		InventoryLedgerFactory
	}

	// CancelOrderUoWFactory creates new cancellation unit of work instances.
	CancelOrderUoWFactory interface {
		Create() CancelOrderUoW
	}

	// OrderLifecycleUoW manages transactions for status transitions that do
	// not need user lookups: the seller path and the expiry job.
	OrderLifecycleUoW interface {
		TxManager
		OrderRepoFactory
		InventoryLedgerFactory
	}

	// OrderLifecycleUoWFactory creates new lifecycle unit of work instances.
	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}
)
