package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountrepo "github.com/yungbote/swagship-backend/internal/data/repos/account"
	catalogrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	ledgerrepo "github.com/yungbote/swagship-backend/internal/data/repos/ledger"
	orderrepo "github.com/yungbote/swagship-backend/internal/data/repos/order"
	shippingrepo "github.com/yungbote/swagship-backend/internal/data/repos/shipping"
	"github.com/yungbote/swagship-backend/internal/data/repos/testutil"
	types "github.com/yungbote/swagship-backend/internal/domain"
)

type orderEnv struct {
	tx        *gorm.DB
	userRepo  accountrepo.UserRepo
	itemRepo  catalogrepo.ItemRepo
	cartRepo  catalogrepo.CartRepo
	orderRepo orderrepo.OrderRepo
	shipRepo  shippingrepo.ShipmentRepo
	ledger    LedgerService
	orders    OrderService
}

func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	env := &orderEnv{
		tx:        tx,
		userRepo:  accountrepo.NewUserRepo(tx, log),
		itemRepo:  catalogrepo.NewItemRepo(tx, log),
		cartRepo:  catalogrepo.NewCartRepo(tx, log),
		orderRepo: orderrepo.NewOrderRepo(tx, log),
		shipRepo:  shippingrepo.NewShipmentRepo(tx, log),
	}
	env.ledger = NewLedgerService(tx, log, env.userRepo, ledgerrepo.NewEntryRepo(tx, log))
	env.orders = NewOrderService(tx, log, env.userRepo, env.itemRepo, env.cartRepo, env.orderRepo, env.shipRepo, env.ledger, NewSimulatedGeocoder())
	return env
}

var testAddress = Address{
	Address: "350 5th Ave",
	City:    "New York",
	State:   "NY",
	ZipCode: "10118",
	Country: "USA",
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)

	user := testutil.SeedUser(t, ctx, env.tx, "order-happy@test.dev", decimal.NewFromInt(40))
	item := testutil.SeedItem(t, ctx, env.tx, "Logo Hoodie", decimal.NewFromInt(25), 10)
	testutil.SeedCartItem(t, ctx, env.tx, user.ID, item.ID, 1)

	order, err := env.orders.PlaceOrder(ctx, user.ID, testAddress)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.Status != types.OrderStatusConfirmed {
		t.Fatalf("order status: want=%s got=%s", types.OrderStatusConfirmed, order.Status)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("order total: want=25 got=%s", order.TotalAmount)
	}
	if order.TrackingNumber == "" {
		t.Fatalf("order has no tracking number")
	}
	if len(order.Lines) != 1 || !order.Lines[0].PriceAtPurchase.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("order lines: want 1 line at 25, got %+v", order.Lines)
	}

	// Balance debited through the ledger.
	balance, err := env.ledger.Balance(ctx, user.ID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("balance after order: want=15 got=%s", balance)
	}
	if sum, err := env.ledger.ReconcileBalance(ctx, user.ID); err != nil || !sum.Equal(decimal.NewFromInt(-25)) {
		t.Fatalf("ledger sum: want=-25 got=%s err=%v", sum, err)
	}

	// Stock decremented.
	items, err := env.itemRepo.GetByIDs(ctx, nil, []uuid.UUID{item.ID})
	if err != nil || len(items) != 1 {
		t.Fatalf("GetByIDs: rows=%d err=%v", len(items), err)
	}
	if items[0].Stock != 9 {
		t.Fatalf("stock after order: want=9 got=%d", items[0].Stock)
	}

	// Cart cleared.
	lines, err := env.cartRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("cart not cleared: %d lines remain", len(lines))
	}

	// Shipment created in the initial state, sharing the tracking number.
	shipment, err := env.shipRepo.GetByOrderID(ctx, nil, order.ID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if shipment.Status != types.ShipmentProcessing {
		t.Fatalf("shipment status: want=%s got=%s", types.ShipmentProcessing, shipment.Status)
	}
	if shipment.TrackingNumber != order.TrackingNumber {
		t.Fatalf("tracking number mismatch: order=%s shipment=%s", order.TrackingNumber, shipment.TrackingNumber)
	}

	// Reads carry the shipment and the catalog details behind each line.
	fetched, err := env.orders.GetOrder(ctx, user.ID, order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if fetched.Shipment == nil || fetched.Shipment.TrackingNumber != order.TrackingNumber {
		t.Fatalf("fetched order missing shipment: %+v", fetched.Shipment)
	}
	if len(fetched.Lines) != 1 || fetched.Lines[0].Item == nil || fetched.Lines[0].Item.Name != "Logo Hoodie" {
		t.Fatalf("fetched order missing line item details: %+v", fetched.Lines)
	}
}

func TestPlaceOrderInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)

	user := testutil.SeedUser(t, ctx, env.tx, "order-poor@test.dev", decimal.NewFromInt(10))
	item := testutil.SeedItem(t, ctx, env.tx, "Logo Hoodie", decimal.NewFromInt(25), 10)
	testutil.SeedCartItem(t, ctx, env.tx, user.ID, item.ID, 1)

	_, err := env.orders.PlaceOrder(ctx, user.ID, testAddress)
	if !IsInsufficientFunds(err) {
		t.Fatalf("PlaceOrder: want InsufficientFundsError, got %v", err)
	}

	// Nothing committed: balance, stock and cart untouched, no order row.
	balance, _ := env.userRepo.GetBalance(ctx, nil, user.ID)
	if !balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("balance after failed order: want=10 got=%s", balance)
	}
	items, _ := env.itemRepo.GetByIDs(ctx, nil, []uuid.UUID{item.ID})
	if len(items) != 1 || items[0].Stock != 10 {
		t.Fatalf("stock after failed order: want=10 got=%+v", items)
	}
	lines, _ := env.cartRepo.GetByUserID(ctx, nil, user.ID)
	if len(lines) != 1 {
		t.Fatalf("cart after failed order: want=1 line got=%d", len(lines))
	}
	count, _ := env.orderRepo.CountByUserID(ctx, nil, user.ID)
	if count != 0 {
		t.Fatalf("order count after failed order: want=0 got=%d", count)
	}
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)

	user := testutil.SeedUser(t, ctx, env.tx, "order-stock@test.dev", decimal.NewFromInt(100))
	item := testutil.SeedItem(t, ctx, env.tx, "Enamel Pin", decimal.NewFromInt(5), 2)
	testutil.SeedCartItem(t, ctx, env.tx, user.ID, item.ID, 3)

	_, err := env.orders.PlaceOrder(ctx, user.ID, testAddress)
	var stock *InsufficientStockError
	if !errors.As(err, &stock) {
		t.Fatalf("PlaceOrder: want InsufficientStockError, got %v", err)
	}
	if stock.Available != 2 || stock.Requested != 3 {
		t.Fatalf("stock detail: available=%d requested=%d", stock.Available, stock.Requested)
	}

	balance, _ := env.userRepo.GetBalance(ctx, nil, user.ID)
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("balance after failed order: want=100 got=%s", balance)
	}
	count, _ := env.orderRepo.CountByUserID(ctx, nil, user.ID)
	if count != 0 {
		t.Fatalf("order count after failed order: want=0 got=%d", count)
	}
}

func TestPlaceOrderStockShortLineRejectsWholeCart(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)

	user := testutil.SeedUser(t, ctx, env.tx, "order-mixed@test.dev", decimal.NewFromInt(100))
	tee := testutil.SeedItem(t, ctx, env.tx, "Logo Tee", decimal.NewFromInt(25), 10)
	pin := testutil.SeedItem(t, ctx, env.tx, "Enamel Pin", decimal.NewFromInt(5), 2)
	testutil.SeedCartItem(t, ctx, env.tx, user.ID, tee.ID, 1)
	testutil.SeedCartItem(t, ctx, env.tx, user.ID, pin.ID, 3)

	_, err := env.orders.PlaceOrder(ctx, user.ID, testAddress)
	var stock *InsufficientStockError
	if !errors.As(err, &stock) {
		t.Fatalf("PlaceOrder: want InsufficientStockError, got %v", err)
	}
	if stock.Available != 2 || stock.Requested != 3 {
		t.Fatalf("stock detail: available=%d requested=%d", stock.Available, stock.Requested)
	}

	// One short line fails the order as a whole: the other line's stock
	// is untouched and the cart keeps both lines.
	items, err := env.itemRepo.GetByIDs(ctx, nil, []uuid.UUID{tee.ID, pin.ID})
	if err != nil || len(items) != 2 {
		t.Fatalf("GetByIDs: rows=%d err=%v", len(items), err)
	}
	for _, it := range items {
		switch it.ID {
		case tee.ID:
			if it.Stock != 10 {
				t.Fatalf("tee stock after failed order: want=10 got=%d", it.Stock)
			}
		case pin.ID:
			if it.Stock != 2 {
				t.Fatalf("pin stock after failed order: want=2 got=%d", it.Stock)
			}
		}
	}
	lines, err := env.cartRepo.GetByUserID(ctx, nil, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("cart after failed order: want=2 lines got=%d", len(lines))
	}
	balance, _ := env.userRepo.GetBalance(ctx, nil, user.ID)
	if !balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("balance after failed order: want=100 got=%s", balance)
	}
	count, _ := env.orderRepo.CountByUserID(ctx, nil, user.ID)
	if count != 0 {
		t.Fatalf("order count after failed order: want=0 got=%d", count)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctx := context.Background()
	env := newOrderEnv(t)

	user := testutil.SeedUser(t, ctx, env.tx, "order-empty@test.dev", decimal.NewFromInt(40))

	_, err := env.orders.PlaceOrder(ctx, user.ID, testAddress)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("PlaceOrder: want ErrEmptyCart, got %v", err)
	}
}
