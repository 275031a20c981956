package postgres_test

import (
	"context"
	"testing"
	"time"

	pg "cargotrack/internal/adapters/out/postgres"
	"cargotrack/internal/adapters/out/postgres/orderrepo"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries: commits
// persist, rollbacks discard, and repositories obtained after Commit fall
// back to the base connection so trail writes still land.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *pg.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(pg.RunMigrations(db))
	suite.factory = pg.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_history, branches, employees, audit_log").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder() *order.Order {
	trackNumber, err := order.NewTrackNumber("LP00123456CN")
	suite.Require().NoError(err)

	ord, err := order.NewOrder(kernel.NewUUID(), trackNumber, nil, nil, nil)
	suite.Require().NoError(err)
	return ord
}

func (suite *UnitOfWorkIntegrationTestSuite) orderCount() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	return count
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newTestOrder()))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsInert() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newTestOrder()))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.Equal(int64(1), suite.orderCount())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoryAfterCommit_UsesBaseConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.newTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	// Post-commit trail write: the repository must fall back to the base
	// connection and persist immediately.
	entry, err := order.NewHistoryEntry(testOrder.ID(), order.Created, kernel.NewUUID(), "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderHistoryRepository().Append(ctx, entry))

	entries, err := uow.OrderHistoryRepository().ListByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
