package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/notify"
	"github.com/quickbite/backend/internal/infrastructure/persistence"
	"github.com/quickbite/backend/internal/infrastructure/remote"
)

type testEnv struct {
	db       *gorm.DB
	orders   *OrderService
	carts    *CartService
	reviews  *ReviewService
	payments *PaymentService
	stats    *StatsService
}

// setupEnv wires the order service stack against an in-memory DB and the
// given catalog base URL.
func setupEnv(t *testing.T, catalogURL string) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&order.Order{}, &order.OrderItem{},
		&order.Cart{}, &order.CartItem{},
		&order.Payment{}, &order.Review{},
	))

	logger := zap.NewNop()
	orderRepo := persistence.NewGormOrderRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)

	clientCfg := config.ClientConfig{Timeout: time.Second, MaxAttempts: 3}
	catalogClient := remote.NewCatalogClient(remote.NewClient(catalogURL, clientCfg, logger))
	dispatcher := notify.NewDispatcher(nil, time.Second, logger)

	return &testEnv{
		db:       db,
		orders:   NewOrderService(orderRepo, cartRepo, catalogClient, dispatcher, logger),
		carts:    NewCartService(cartRepo, logger),
		reviews:  NewReviewService(persistence.NewGormReviewRepository(db), orderRepo, logger),
		payments: NewPaymentService(persistence.NewGormPaymentRepository(db), orderRepo, logger),
		stats:    NewStatsService(orderRepo, catalogClient, logger),
	}
}

// catalogFake serves menu items 10 and 11; everything else is a 404.
func catalogFake(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/menu/10":
			w.Write([]byte(`{"id":10,"name":"Margherita","price":700}`))
		case "/menu/11":
			w.Write([]byte(`{"id":11,"name":"Cola","price":600}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func fillCart(t *testing.T, env *testEnv, userID uint) {
	t.Helper()
	ctx := context.Background()
	_, err := env.carts.AddItem(ctx, userID, AddCartItemInput{MenuItemID: 10, Quantity: 2, Price: 700})
	require.NoError(t, err)
	_, err = env.carts.AddItem(ctx, userID, AddCartItemInput{MenuItemID: 11, Quantity: 1, Price: 600})
	require.NoError(t, err)
}

func TestCreateOrderFromCart(t *testing.T) {
	server := catalogFake(t)
	defer server.Close()
	env := setupEnv(t, server.URL)
	ctx := context.Background()

	fillCart(t, env, 7)

	o, err := env.orders.Create(ctx, 7, CreateOrderInput{Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, order.PaymentMethodCard, o.PaymentMethod)
	assert.Equal(t, int64(2000), o.TotalPrice)

	cart, err := env.carts.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

type capturingSender struct {
	mu   sync.Mutex
	text string
}

func (s *capturingSender) Send(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	return nil
}

func (s *capturingSender) last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func TestCreateOrderNotificationFormatsCents(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	sender := &capturingSender{}
	dispatcher := notify.NewDispatcher(sender, time.Second, zap.NewNop())
	orders := NewOrderService(
		persistence.NewGormOrderRepository(env.db),
		persistence.NewGormCartRepository(env.db),
		nil, dispatcher, zap.NewNop(),
	)

	_, err := env.carts.AddItem(ctx, 7, AddCartItemInput{MenuItemID: 10, Quantity: 1, Price: 1905})
	require.NoError(t, err)
	_, err = orders.Create(ctx, 7, CreateOrderInput{Address: "1 Main St"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return strings.Contains(sender.last(), "total 19.05")
	}, time.Second, 5*time.Millisecond)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")

	_, err := env.orders.Create(context.Background(), 7, CreateOrderInput{Address: "1 Main St"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_CART", domainErr.Code)
}

func TestCreateOrderPastDeliveryTime(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	fillCart(t, env, 7)

	past := time.Now().Add(-time.Hour)
	_, err := env.orders.Create(context.Background(), 7, CreateOrderInput{Address: "1 Main St", DeliveryTime: &past})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DELIVERY_TIME", domainErr.Code)
}

func TestGetOwnForbidden(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	fillCart(t, env, 7)
	o, err := env.orders.Create(ctx, 7, CreateOrderInput{Address: "1 Main St"})
	require.NoError(t, err)

	_, err = env.orders.GetOwn(ctx, 8, o.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	_, err = env.orders.GetOwn(ctx, 7, 999)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCancelOrder(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	fillCart(t, env, 7)
	o, err := env.orders.Create(ctx, 7, CreateOrderInput{Address: "1 Main St"})
	require.NoError(t, err)

	cancelled, err := env.orders.Cancel(ctx, 7, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, cancelled.Status)

	// Already cancelled; no longer cancellable.
	_, err = env.orders.Cancel(ctx, 7, o.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ORDER_NOT_CANCELLABLE", domainErr.Code)
}

func TestAdminDetailEnrichment(t *testing.T) {
	server := catalogFake(t)
	defer server.Close()
	env := setupEnv(t, server.URL)
	ctx := context.Background()

	// Item 10 resolves; item 99 was deleted from the catalog.
	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a", TotalPrice: 1500}
	require.NoError(t, env.db.Create(o).Error)
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o.ID, MenuItemID: 10, Quantity: 2, Price: 700}).Error)
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o.ID, MenuItemID: 99, Quantity: 1, Price: 100}).Error)

	detail, err := env.orders.AdminDetail(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Margherita", detail.Items[0].MenuItemName)
	assert.Equal(t, int64(1400), detail.Items[0].Subtotal)
	assert.Equal(t, "Unknown", detail.Items[1].MenuItemName)
}

func TestAdminDetailCatalogDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	env := setupEnv(t, server.URL)
	ctx := context.Background()

	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a"}
	require.NoError(t, env.db.Create(o).Error)
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o.ID, MenuItemID: 10, Quantity: 1, Price: 700}).Error)

	// The view still renders; the name degrades.
	detail, err := env.orders.AdminDetail(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, "Unknown", detail.Items[0].MenuItemName)
}

func TestAdminUpdateStatus(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a"}
	require.NoError(t, env.db.Create(o).Error)

	updated, err := env.orders.AdminUpdateStatus(ctx, o.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, updated.Status)

	_, err = env.orders.AdminUpdateStatus(ctx, o.ID, "teleported")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}

func TestAdminListStatusFilter(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	require.NoError(t, env.db.Create(&order.Order{UserID: 1, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a"}).Error)
	require.NoError(t, env.db.Create(&order.Order{UserID: 2, RestaurantID: 1, Status: order.StatusDelivered, DeliveryAddress: "b"}).Error)

	all, err := env.orders.AdminList(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := env.orders.AdminList(ctx, "pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = env.orders.AdminList(ctx, "bogus")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}

func TestReviewLifecycle(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusDelivering, DeliveryAddress: "a"}
	require.NoError(t, env.db.Create(o).Error)

	input := ReviewInput{Rating: 5, Comment: "absolutely delicious food"}

	// Not delivered yet.
	_, err := env.reviews.CreateForOrder(ctx, 7, o.ID, input)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ORDER_NOT_DELIVERED", domainErr.Code)

	// Someone else's order.
	require.NoError(t, env.db.Model(o).Update("status", order.StatusDelivered).Error)
	_, err = env.reviews.CreateForOrder(ctx, 8, o.ID, input)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	review, err := env.reviews.CreateForOrder(ctx, 7, o.ID, input)
	require.NoError(t, err)

	// One review per order.
	_, err = env.reviews.CreateForOrder(ctx, 7, o.ID, input)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "REVIEW_EXISTS", domainErr.Code)

	// Deletion: stranger no, author yes.
	err = env.reviews.Delete(ctx, review.ID, 8, identity.RoleClient)
	assert.ErrorIs(t, err, shared.ErrForbidden)
	require.NoError(t, env.reviews.Delete(ctx, review.ID, 7, identity.RoleClient))
}

func TestReviewDeleteBySystemAdmin(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusDelivered, DeliveryAddress: "a"}
	require.NoError(t, env.db.Create(o).Error)

	review, err := env.reviews.CreateForOrder(ctx, 7, o.ID, ReviewInput{Rating: 3, Comment: "it was fine I suppose"})
	require.NoError(t, err)

	require.NoError(t, env.reviews.Delete(ctx, review.ID, 99, identity.RoleSystemAdmin))
}

func TestPaymentLifecycle(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	o := &order.Order{UserID: 7, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a", TotalPrice: 2000}
	require.NoError(t, env.db.Create(o).Error)

	payment, err := env.payments.Create(ctx, o.ID, 2000)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPending, payment.Status)

	confirmed, err := env.payments.Confirm(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusCompleted, confirmed.Status)
	assert.NotEmpty(t, confirmed.TransactionID)

	_, err = env.payments.Confirm(ctx, payment.ID)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PAYMENT_STATE", domainErr.Code)

	_, err = env.payments.Create(ctx, 999, 100)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestStatsOverview(t *testing.T) {
	server := catalogFake(t)
	defer server.Close()
	env := setupEnv(t, server.URL)
	ctx := context.Background()

	o1 := &order.Order{UserID: 1, RestaurantID: 1, Status: order.StatusDelivered, DeliveryAddress: "a", TotalPrice: 2000}
	o2 := &order.Order{UserID: 2, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "b", TotalPrice: 1000}
	o3 := &order.Order{UserID: 3, RestaurantID: 1, Status: order.StatusCancelled, DeliveryAddress: "c", TotalPrice: 500}
	for _, o := range []*order.Order{o1, o2, o3} {
		require.NoError(t, env.db.Create(o).Error)
	}
	// Item 10 in two orders, item 99 unresolvable in one.
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o1.ID, MenuItemID: 10, Quantity: 2, Price: 700}).Error)
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o2.ID, MenuItemID: 10, Quantity: 1, Price: 700}).Error)
	require.NoError(t, env.db.Create(&order.OrderItem{OrderID: o2.ID, MenuItemID: 99, Quantity: 5, Price: 100}).Error)

	overview, err := env.stats.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.Orders)
	// Cancelled orders count toward revenue, and the average floors.
	assert.Equal(t, int64(3500), overview.Revenue)
	assert.Equal(t, int64(1166), overview.AverageOrder)
	assert.Equal(t, int64(1), overview.ActiveOrders)

	// Unresolvable item 99 is skipped, not shown nameless.
	require.Len(t, overview.TopItems, 1)
	assert.Equal(t, "Margherita", overview.TopItems[0].Name)
	assert.Equal(t, 2, overview.TopItems[0].Orders)
	assert.Equal(t, 3, overview.TopItems[0].Sold)
}

func TestOrdersByDay(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	require.NoError(t, env.db.Create(&order.Order{UserID: 1, RestaurantID: 1, Status: order.StatusPending, DeliveryAddress: "a", CreatedAt: time.Now()}).Error)

	series, err := env.stats.OrdersByDay(ctx)
	require.NoError(t, err)
	require.Len(t, series, 7)
	assert.Equal(t, time.Now().Format("02/01"), series[6].Label)
	assert.Equal(t, int64(1), series[6].Count)
	assert.Equal(t, int64(0), series[0].Count)
}

func TestCartValidation(t *testing.T) {
	env := setupEnv(t, "http://localhost:0")
	ctx := context.Background()

	_, err := env.carts.AddItem(ctx, 7, AddCartItemInput{MenuItemID: 0, Quantity: 1, Price: 100})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)

	_, err = env.carts.AddItem(ctx, 7, AddCartItemInput{MenuItemID: 10, Quantity: 0, Price: 100})
	require.ErrorAs(t, err, &domainErr)

	_, err = env.carts.UpdateItem(ctx, 7, 1, -2)
	require.ErrorAs(t, err, &domainErr)
}
