package queries_test

import (
	"context"
	"testing"
	"time"

	"flowershop/internal/adapters/out/postgres/orderrepo"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderByIDQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderByIDQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderByIDQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderByIDQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) storeOrder() *order.Order {
	items := []order.Item{
		{FlowerID: "iris-blue", FlowerName: "Blue Iris", Price: decimal.NewFromFloat(6.75), Quantity: 4},
	}

	o, err := order.NewOrder(kernel.NewUUID(), "Bob Thorn", "3 Petal Way", items)
	suite.Require().NoError(err)

	stored, err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return stored
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsResponse() {
	stored := suite.storeOrder()

	query, err := queries.NewGetOrderByIDQuery(stored.ID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID().String(), resp.ID.String())
	suite.Equal("Bob Thorn", resp.CustomerName)
	suite.Equal("3 Petal Way", resp.DeliveryAddress)
	suite.Equal("pending", resp.Status)
	suite.Equal(int64(1), resp.Version)
	suite.True(resp.TotalAmount.Equal(decimal.NewFromFloat(27.00)))

	suite.Require().Len(resp.Items, 1)
	suite.Equal("iris-blue", resp.Items[0].FlowerID)
	suite.Equal(4, resp.Items[0].Quantity)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderByIDQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_SoftDeletedOrder_ReturnsNotFound() {
	stored := suite.storeOrder()
	suite.Require().NoError(suite.orderRepo.SoftDelete(context.Background(), stored.ID()))

	query, err := queries.NewGetOrderByIDQuery(stored.ID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderByIDQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderByIDQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderByIDQuery constructor")
}

func TestGetOrderByIDQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderByIDQueryHandlerTestSuite))
}
