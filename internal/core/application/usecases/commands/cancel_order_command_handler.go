package commands

import (
	"context"
)

// CancelOrderCommandHandler handles buyer-initiated order cancellation.
// Loads the order under a row lock, verifies the requester owns it, drives
// the status machine to CANCELLED and returns the reserved stock, all in one
// transaction.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Ownership is checked before the status machine: a requester who does not
// own the order gets ErrNotOrderOwner even when the order could not be
// cancelled anyway.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cancelled, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	buyer, err := uow.UserRepository().Get(ctx, cancelled.BuyerID())
	if err != nil {
		return err
	}

	if buyer.Email() != cmd.RequesterEmail() {
		return ErrNotOrderOwner
	}

	if err = cancelled.Cancel(); err != nil {
		return err
	}

	deltas, err := stockDeltasFromLines(cancelled.Lines())
	if err != nil {
		return err
	}

	if err = uow.InventoryLedger().Release(ctx, deltas); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cancelled); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
