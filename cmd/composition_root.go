package cmd

import (
	"ecobazaar/internal/adapters/out/postgres"
	"ecobazaar/internal/adapters/out/postgres/emissionrepo"
	"ecobazaar/internal/core/application/usecases/commands"
	"ecobazaar/internal/core/application/usecases/queries"
	"ecobazaar/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderLifecycleUoWFactory = FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStaleOrdersCommandHandler() commands.ExpireStaleOrdersCommandHandler {
	var f commands.OrderLifecycleUoWFactory = FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrderQueryHandler() queries.GetBuyerOrderQueryHandler {
	return queries.NewGetBuyerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrdersQueryHandler() queries.GetSellerOrdersQueryHandler {
	return queries.NewGetSellerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSellerOrderQueryHandler() queries.GetSellerOrderQueryHandler {
	return queries.NewGetSellerOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateFootprintQueryHandler() queries.CalculateFootprintQueryHandler {
	factors := emissionrepo.NewGormEmissionFactorRepository(c.gormDB)
	calculator, err := services.NewCarbonCalculator(factors)
	if err != nil {
		panic(err)
	}
	return queries.NewCalculateFootprintQueryHandler(calculator)
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}
