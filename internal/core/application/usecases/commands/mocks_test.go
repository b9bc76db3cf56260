package commands_test

import (
	"context"
	"testing"
	"time"

	"ecobazaar/internal/core/application/usecases/commands"
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
	"ecobazaar/internal/core/domain/model/user"
	"ecobazaar/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) Reserve(ctx context.Context, deltas []product.StockDelta) error {
	args := m.Called(ctx, deltas)
	return args.Error(0)
}

func (m *MockInventoryLedger) Release(ctx context.Context, deltas []product.StockDelta) error {
	args := m.Called(ctx, deltas)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) InventoryLedger() ports.InventoryLedger {
	args := m.Called()
	return args.Get(0).(ports.InventoryLedger)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockCancelOrderUoWFactory struct{ mock.Mock }

func (m *MockCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CancelOrderUoW)
}

type MockOrderLifecycleUoWFactory struct{ mock.Mock }

func (m *MockOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLifecycleUoW)
}

func testShippingAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("Jane", "Doe", "12 Green Lane", "", "Portland", "OR", "97201", "USA")
	require.NoError(t, err)
	return address
}

func testBuyer(t *testing.T, email string) *user.User {
	t.Helper()
	buyer, err := user.NewUser(kernel.NewUUID(), email, "jane", user.RoleBuyer)
	require.NoError(t, err)
	return buyer
}

func testCatalogProduct(t *testing.T, id kernel.UUID, priceMinor int64, stock int) *product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromMinor(priceMinor)
	require.NoError(t, err)
	p, err := product.NewProduct(id, kernel.NewUUID(),
		"Bamboo Toothbrush", "", "Personal Care", price, stock, 0.12, true)
	require.NoError(t, err)
	return p
}

func testPendingOrder(t *testing.T, buyerID kernel.UUID, productID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromMinor(1999)
	require.NoError(t, err)
	line, err := order.NewLine(productID, quantity, price)
	require.NoError(t, err)
	pending, err := order.NewOrder(kernel.NewUUID(), buyerID, testShippingAddress(t), []order.Line{line})
	require.NoError(t, err)
	return pending
}
