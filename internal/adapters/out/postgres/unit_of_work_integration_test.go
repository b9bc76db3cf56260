package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "ecobazaar/internal/adapters/out/postgres"
	"ecobazaar/internal/adapters/out/postgres/emissionrepo"
	"ecobazaar/internal/adapters/out/postgres/orderrepo"
	"ecobazaar/internal/adapters/out/postgres/productrepo"
	"ecobazaar/internal/adapters/out/postgres/userrepo"
	"ecobazaar/internal/core/domain/model/kernel"
	"ecobazaar/internal/core/domain/model/order"
	"ecobazaar/internal/core/domain/model/product"
	"ecobazaar/internal/core/domain/model/user"
	"ecobazaar/internal/core/ports"
	"ecobazaar/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for
// all tests and runs migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&emissionrepo.EmissionFactorDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_lines, products, users, emission_factors").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.EmissionFactorRepository())
	suite.NotNil(uow1.InventoryLedger())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// commit without an active transaction fails
	err = uow.Commit(ctx)
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	catalogProduct := suite.seedProduct(10)
	placed := suite.newOrderFor(catalogProduct, 3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	delta, err := product.NewStockDelta(catalogProduct.ID(), 3)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.InventoryLedger().Reserve(ctx, []product.StockDelta{delta}))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	// order and lines are visible outside the transaction
	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingApproval, loaded.Status())
	suite.Len(loaded.Lines(), 1)
	suite.Equal(placed.TotalPrice().AmountMinor(), loaded.TotalPrice().AmountMinor())

	// stock was decremented
	reloaded, err := suite.factory.Create().ProductRepository().Get(ctx, catalogProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(7, reloaded.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	catalogProduct := suite.seedProduct(10)
	placed := suite.newOrderFor(catalogProduct, 3)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	delta, err := product.NewStockDelta(catalogProduct.ID(), 3)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.InventoryLedger().Reserve(ctx, []product.StockDelta{delta}))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	reloaded, err := suite.factory.Create().ProductRepository().Get(ctx, catalogProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(10, reloaded.Stock(), "Rollback should restore the reserved stock")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryLedger_InsufficientStock() {
	ctx := context.Background()
	catalogProduct := suite.seedProduct(2)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	delta, err := product.NewStockDelta(catalogProduct.ID(), 5)
	suite.Require().NoError(err)

	err = uow.InventoryLedger().Reserve(ctx, []product.StockDelta{delta})

	suite.Require().ErrorIs(err, product.ErrInsufficientStock)
	var stockErr *product.InsufficientStockError
	suite.Require().ErrorAs(err, &stockErr)
	suite.Equal(5, stockErr.Requested)
	suite.Equal(2, stockErr.Available)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInventoryLedger_PartialBatchRollsBack() {
	ctx := context.Background()
	first := suite.seedProduct(10)
	second := suite.seedProduct(1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	firstDelta, _ := product.NewStockDelta(first.ID(), 4)
	secondDelta, _ := product.NewStockDelta(second.ID(), 2)

	err := uow.InventoryLedger().Reserve(ctx, []product.StockDelta{firstDelta, secondDelta})
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)
	suite.Require().NoError(uow.Rollback(ctx))

	// the successful first decrement was rolled back with the batch
	reloaded, err := suite.factory.Create().ProductRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(10, reloaded.Stock())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_GetByEmail() {
	ctx := context.Background()
	buyer, err := user.NewUser(kernel.NewUUID(), "jane@example.com", "jane", user.RoleBuyer)
	suite.Require().NoError(err)
	suite.seedUser(buyer)

	loaded, err := suite.factory.Create().UserRepository().GetByEmail(ctx, "jane@example.com")
	suite.Require().NoError(err)
	suite.Equal(buyer.ID(), loaded.ID())
	suite.Equal(user.RoleBuyer, loaded.Role())

	_, err = suite.factory.Create().UserRepository().GetByEmail(ctx, "nobody@example.com")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestEmissionFactorRepository_GetValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Create(&emissionrepo.EmissionFactorDTO{
		FactorType: "MATERIAL", Name: "cotton", Region: "Global", Value: 5.2,
	}).Error)

	repo := suite.factory.Create().EmissionFactorRepository()

	value, err := repo.GetValue(ctx, "MATERIAL", "cotton", "Global")
	suite.Require().NoError(err)
	suite.InDelta(5.2, value, 0.0001)

	_, err = repo.GetValue(ctx, "MATERIAL", "cotton", "EU")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(stock int) *product.Product {
	price, err := kernel.NewMoneyFromMinor(1299)
	suite.Require().NoError(err)

	catalogProduct, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		"Bamboo Toothbrush", "Compostable handle", "Personal Care", price, stock, 0.12, true)
	suite.Require().NoError(err)

	err = suite.db.Exec(`
		INSERT INTO products (id, seller_id, name, description, category, price, stock,
			carbon_emission, zero_waste, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, catalogProduct.ID().Bytes(), catalogProduct.SellerID().Bytes(), catalogProduct.Name(),
		catalogProduct.Description(), catalogProduct.Category(), catalogProduct.Price().AmountMinor(),
		catalogProduct.Stock(), catalogProduct.CarbonEmission(), catalogProduct.IsZeroWaste(),
		catalogProduct.IsActive(), catalogProduct.CreatedAt()).Error
	suite.Require().NoError(err)

	return catalogProduct
}

func (suite *UnitOfWorkIntegrationTestSuite) seedUser(entity *user.User) {
	err := suite.db.Exec(`
		INSERT INTO users (id, email, username, role) VALUES (?, ?, ?, ?)
	`, entity.ID().Bytes(), entity.Email(), entity.Username(), int(entity.Role())).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrderFor(catalogProduct *product.Product, quantity int) *order.Order {
	address, err := order.NewAddress("Jane", "Doe", "12 Green Lane", "", "Portland", "OR", "97201", "USA")
	suite.Require().NoError(err)

	line, err := order.NewLine(catalogProduct.ID(), quantity, catalogProduct.Price())
	suite.Require().NoError(err)

	placed, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, []order.Line{line})
	suite.Require().NoError(err)
	return placed
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
