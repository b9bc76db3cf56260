package commands

import (
	"context"

	"ecobazaar/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles seller-driven status transitions.
// Loads the order under a row lock and applies the transition through the
// status machine; a transition to CANCELLED also returns the reserved stock.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderLifecycleUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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
	updated, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = updated.AdvanceTo(cmd.Status()); err != nil {
		return err
	}

	if updated.Status() == order.Cancelled {
		deltas, err := stockDeltasFromLines(updated.Lines())
		if err != nil {
			return err
		}

		if err = uow.InventoryLedger().Release(ctx, deltas); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
