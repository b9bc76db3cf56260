package commands_test

import (
	"testing"

	"ecobazaar/internal/core/application/usecases/commands"
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
	"ecobazaar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, productID kernel.UUID, quantity int) commands.CreateOrderCommand {
	t.Helper()
	item, err := commands.NewOrderItem(productID, quantity)
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), "jane@example.com", testShippingAddress(t), []commands.OrderItem{item})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, productID, 2)

	buyer := testBuyer(t, "jane@example.com")
	catalogProduct := testCatalogProduct(t, productID, 1299, 10)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	ledger := new(MockInventoryLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(buyer, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).Return(catalogProduct, nil).Once(),
		uow.On("InventoryLedger").Return(ledger).Once(),
		ledger.On("Reserve", mock.Anything, mock.AnythingOfType("[]product.StockDelta")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// the persisted order carries the catalog price snapshot
	placed := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.PendingApproval, placed.Status())
	assert.Equal(t, int64(2598), placed.TotalPrice().AmountMinor())
	assert.Equal(t, buyer.ID(), placed.BuyerID())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockPlaceOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_UnknownBuyer(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, kernel.NewUUID(), 1)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "jane@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, productID, 1)

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(testBuyer(t, "jane@example.com"), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("productID", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, productID, 5)

	userRepo := new(MockUserRepository)
	productRepo := new(MockProductRepository)
	ledger := new(MockInventoryLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(testBuyer(t, "jane@example.com"), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(testCatalogProduct(t, productID, 1299, 2), nil).Once(),
		uow.On("InventoryLedger").Return(ledger).Once(),
		ledger.On("Reserve", mock.Anything, mock.AnythingOfType("[]product.StockDelta")).
			Return(product.NewInsufficientStockError(productID, 5, 2)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, product.ErrInsufficientStock)
	uow.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, productID, 1)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	userRepo := new(MockUserRepository)
	ledger := new(MockInventoryLedger)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
			Return(testBuyer(t, "jane@example.com"), nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, productID).
			Return(testCatalogProduct(t, productID, 1299, 10), nil).Once(),
		uow.On("InventoryLedger").Return(ledger).Once(),
		ledger.On("Reserve", mock.Anything, mock.AnythingOfType("[]product.StockDelta")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
