package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyNonTerminal() {
	pending := newTestOrder(&suite.Suite, order.PaymentCash)
	seeking := newTestOrder(&suite.Suite, order.PaymentCash)
	suite.Require().NoError(seeking.ConfirmByShop())
	awaiting := newTestOrder(&suite.Suite, order.PaymentTransfer)
	cancelled := newTestOrder(&suite.Suite, order.PaymentCash)
	suite.Require().NoError(cancelled.CancelByCustomer())
	delivered := newTestOrder(&suite.Suite, order.PaymentCash)
	suite.Require().NoError(delivered.ConfirmByShop())
	suite.Require().NoError(delivered.Claim(newTestShipper(&suite.Suite)))
	suite.Require().NoError(delivered.CompleteDelivery(delivered.Shipper().ID()))

	saveOrders(&suite.Suite, suite.db, pending, seeking, awaiting, cancelled, delivered)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)

	byID := make(map[string]queries.OrderSummaryResponse)
	for _, summary := range result {
		byID[summary.ID.String()] = summary
	}

	suite.Equal(order.Pending, byID[pending.ID().String()].Status)
	suite.Equal(order.SeekingShipper, byID[seeking.ID().String()].Status)
	suite.Equal(order.AwaitingPayment, byID[awaiting.ID().String()].Status)
	suite.NotContains(byID, cancelled.ID().String())
	suite.NotContains(byID, delivered.ID().String())

	suite.Equal(pending.CustomerID(), byID[pending.ID().String()].CustomerID)
	suite.Equal(pending.Total(), byID[pending.ID().String()].Total)
	suite.Equal(order.PhaseUnassigned, byID[pending.ID().String()].Phase)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ClaimedOrder_ReportsProcessingPhase() {
	claimed := newTestOrder(&suite.Suite, order.PaymentCash)
	suite.Require().NoError(claimed.ConfirmByShop())
	suite.Require().NoError(claimed.Claim(newTestShipper(&suite.Suite)))

	saveOrders(&suite.Suite, suite.db, claimed)

	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(order.Delivering, result[0].Status)
	suite.Equal(order.PhaseProcessing, result[0].Phase)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}

// mockAggregateTracker implements the repository tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

func newTestOrder(s *suite.Suite, paymentMethod order.PaymentMethod) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Phở bò", "Tô lớn", 65000, 2)
	s.Require().NoError(err)
	address, err := order.NewAddress("12 Nguyễn Huệ", "Bến Nghé", "Quận 1", "TP.HCM", "0900000000")
	s.Require().NoError(err)
	shop, err := order.NewShopSnapshot(kernel.NewUUID(), "Quán Phở 24", "0281234567")
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, address, paymentMethod, shop, nil)
	s.Require().NoError(err)
	return o
}

func newTestShipper(s *suite.Suite) order.ShipperSnapshot {
	shipper, err := order.NewShipperSnapshot(kernel.NewUUID(), "Anh Tài", "0911111111")
	s.Require().NoError(err)
	return shipper
}

func saveOrders(s *suite.Suite, db *gorm.DB, orders ...*order.Order) {
	repo := orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	for _, o := range orders {
		s.Require().NoError(repo.Add(context.Background(), o))
	}
}
