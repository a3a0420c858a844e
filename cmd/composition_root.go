package cmd

import (
	"fleetops/internal/adapters/out/postgres"
	"fleetops/internal/adapters/out/postgres/devicerepo"
	"fleetops/internal/adapters/out/postgres/staffrepo"
	"fleetops/internal/adapters/out/redisseq"
	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	redisClient *redis.Client
	uowFactory  postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		redisClient: redisClient,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(
		f,
		devicerepo.NewGormDeviceDirectory(c.gormDB),
		staffrepo.NewGormStaffDirectory(c.gormDB),
		redisseq.NewRedisSequenceAllocator(c.redisClient),
	)
}

func (c *CompositionRoot) CreateCancelWorkOrderCommandHandler() commands.CancelWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepStaleWorkOrdersCommandHandler() commands.SweepStaleWorkOrdersCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepStaleWorkOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}
