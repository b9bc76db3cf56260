package commands

import (
	"context"

	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the buyer, snapshots catalog prices into order lines, reserves
// stock for every line and persists the order awaiting approval. The whole
// placement runs in one transaction: a missing product or a stock shortfall
// rolls back everything, including reservations already applied for earlier
// lines.
type CreateOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory PlaceOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	buyer, err := uow.UserRepository().GetByEmail(ctx, cmd.BuyerEmail())
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	lines := make([]order.Line, 0, len(cmd.Items()))
	deltas := make([]product.StockDelta, 0, len(cmd.Items()))

	for _, item := range cmd.Items() {
		requested, err := productRepo.Get(ctx, item.ProductID())
		if err != nil {
			return err
		}

		line, err := order.NewLine(requested.ID(), item.Quantity(), requested.Price())
		if err != nil {
			return err
		}
		lines = append(lines, line)

		delta, err := product.NewStockDelta(requested.ID(), item.Quantity())
		if err != nil {
			return err
		}
		deltas = append(deltas, delta)
	}

	if err = uow.InventoryLedger().Reserve(ctx, deltas); err != nil {
		return err
	}

	placed, err := order.NewOrder(cmd.OrderID(), buyer.ID(), cmd.ShippingAddress(), lines)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
