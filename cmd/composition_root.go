package cmd

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"cargotrack/internal/adapters/out/kafka"
	"cargotrack/internal/adapters/out/postgres"
	"cargotrack/internal/adapters/out/postgres/auditrepo"
	"cargotrack/internal/adapters/out/postgres/employeerepo"
	"cargotrack/internal/core/application/usecases/commands"
	"cargotrack/internal/core/application/usecases/queries"
	"cargotrack/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	producer   *kafka.OrderEventProducer
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewNoopPublisher(),
		logger:     logger,
	}

	if configs.KafkaHost != "" {
		producer := kafka.NewOrderEventProducer(
			strings.Split(configs.KafkaHost, ","),
			configs.KafkaOrderChangedTopic,
		)
		root.producer = producer
		root.publisher = producer
	}

	return root
}

// Close releases outbound connections held by the root.
func (c *CompositionRoot) Close() error {
	if c.producer != nil {
		return c.producer.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	var f commands.BranchUoWFactory = FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBranchCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterEmployeeCommandHandler() commands.RegisterEmployeeCommandHandler {
	var f commands.EmployeeUoWFactory = FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterEmployeeCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByTrackNumberQueryHandler() queries.GetOrderByTrackNumberQueryHandler {
	return queries.NewGetOrderByTrackNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableActionsQueryHandler() queries.GetAvailableActionsQueryHandler {
	return queries.NewGetAvailableActionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBranchesQueryHandler() queries.GetBranchesQueryHandler {
	return queries.NewGetBranchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEmployeesQueryHandler() queries.GetEmployeesQueryHandler {
	return queries.NewGetEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStuckOrdersQueryHandler() queries.GetStuckOrdersQueryHandler {
	return queries.NewGetStuckOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEmployeeRepository() ports.EmployeeRepository {
	return employeerepo.NewGormEmployeeRepository(c.gormDB)
}

func (c *CompositionRoot) CreateAuditLogRepository() ports.AuditLogRepository {
	return auditrepo.NewGormAuditLogRepository(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}
