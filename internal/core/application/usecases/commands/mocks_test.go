package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"

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

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) ClaimForShipper(
	ctx context.Context, id kernel.UUID, shipper order.ShipperSnapshot,
) error {
	args := m.Called(ctx, id, shipper)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmbeddedOrderID(
	ctx context.Context, orderID kernel.UUID,
) (*user.User, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
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

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Broadcast(eventName string, payload any) error {
	args := m.Called(eventName, payload)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Bún chả", "Suất đặc biệt", 55000, 1)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("45 Lý Thường Kiệt", "Trần Hưng Đạo", "Hoàn Kiếm", "Hà Nội", "0987654321")
	require.NoError(t, err)
	return address
}

func testShop(t *testing.T) order.ShopSnapshot {
	t.Helper()
	shop, err := order.NewShopSnapshot(kernel.NewUUID(), "Bún Chả Hương Liên", "0243999888")
	require.NoError(t, err)
	return shop
}

func testShipper(t *testing.T) order.ShipperSnapshot {
	t.Helper()
	shipper, err := order.NewShipperSnapshot(kernel.NewUUID(), "Chú Bảy", "0933333333")
	require.NoError(t, err)
	return shipper
}

func newStoredOrder(t *testing.T, paymentMethod order.PaymentMethod) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		testItems(t), testAddress(t), paymentMethod, testShop(t), nil,
	)
	require.NoError(t, err)
	return o
}

// restoreClaimedOrder rebuilds an order as it looks after a shipper claim has
// been persisted: delivering, processing phase, shipper attached, version bumped.
func restoreClaimedOrder(t *testing.T, template *order.Order, shipper order.ShipperSnapshot) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		template.ID(),
		template.CustomerID(),
		template.Items(),
		time.Now().UTC(),
		template.ShippingAddress(),
		template.PaymentMethod(),
		order.Delivering,
		order.PhaseProcessing,
		template.Shop(),
		&shipper,
		template.Images(),
		template.Version()+1,
	)
	require.NoError(t, err)
	return o
}

func newStoredUser(t *testing.T, orderID kernel.UUID, status order.Status) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Nguyễn Văn An", "0911222333")
	require.NoError(t, err)
	require.NoError(t, u.AddOrderMirror(orderID, status))
	return u
}
