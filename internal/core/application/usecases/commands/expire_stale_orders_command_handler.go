package commands

import (
	"context"
)

// ExpireStaleOrdersCommandHandler cancels orders that were never approved.
// All stale orders found for the cutoff are cancelled and their stock
// released in a single transaction.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderLifecycleUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for stale-order expiry.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderLifecycleUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) error {
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
	staleOrders, err := orderRepo.GetAllPendingBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	for _, stale := range staleOrders {
		if err = stale.Cancel(); err != nil {
			return err
		}

		deltas, err := stockDeltasFromLines(stale.Lines())
		if err != nil {
			return err
		}

		if err = uow.InventoryLedger().Release(ctx, deltas); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, stale); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
