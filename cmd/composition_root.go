package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/in/realtime"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *realtime.Hub
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        realtime.NewHub(logger),
		logger:     logger,
	}

	// The hub is the notifier dependency of the very handlers it routes
	// inbound events to; close the loop after both sides exist.
	root.hub.AttachHandlers(
		root.CreateClaimOrderByShipperCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
	)

	return root
}

// Hub returns the realtime session hub.
func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateConfirmOrderByShopCommandHandler() commands.ConfirmOrderByShopCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderByShopCommandHandler(f, c.hub, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.hub, c.logger)
}

func (c *CompositionRoot) CreateCompleteAfterPaymentCommandHandler() commands.CompleteAfterPaymentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteAfterPaymentCommandHandler(f, c.hub, c.logger)
}

func (c *CompositionRoot) CreateClaimOrderByShipperCommandHandler() commands.ClaimOrderByShipperCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderByShipperCommandHandler(f, c.hub, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrderHistoryQueryHandler() queries.GetUserOrderHistoryQueryHandler {
	return queries.NewGetUserOrderHistoryQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
