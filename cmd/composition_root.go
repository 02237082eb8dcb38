package cmd

import (
	"log/slog"

	"retail/internal/adapters/out/postgres"
	"retail/internal/core/application/usecases/commands"
	"retail/internal/core/application/usecases/queries"
	"retail/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.CreateOrderUoWFactory())
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.CreateOrderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateLinkStaffCommandHandler() commands.LinkStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLinkStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCollectionDetailCommandHandler() commands.AddCollectionDetailCommandHandler {
	return commands.NewAddCollectionDetailCommandHandler(c.createDetailUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAddDeliveryDetailCommandHandler() commands.AddDeliveryDetailCommandHandler {
	return commands.NewAddDeliveryDetailCommandHandler(c.createDetailUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBiggestSellersQueryHandler() queries.GetBiggestSellersQueryHandler {
	return queries.NewGetBiggestSellersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleCollectionsQueryHandler() queries.GetStaleCollectionsQueryHandler {
	return queries.NewGetStaleCollectionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaffSalesQueryHandler() queries.GetStaffSalesQueryHandler {
	return queries.NewGetStaffSalesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetStaleCollectionsQueryHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.config.StaleCollectionAfterDays,
		c.logger,
	)
}

func (c *CompositionRoot) createDetailUoWFactory() commands.DetailUoWFactory {
	return FuncDetailUoWFactory(func() commands.DetailUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncDetailUoWFactory func() commands.DetailUoW

func (f FuncDetailUoWFactory) Create() commands.DetailUoW {
	return f()
}
