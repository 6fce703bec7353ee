package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, balance decimal.Decimal) *types.User {
	tb.Helper()
	u := &types.User{
		ID:            uuid.New(),
		Email:         email,
		Password:      "pw",
		Name:          "Test User",
		CreditBalance: balance,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, price decimal.Decimal, stock int) *types.Item {
	tb.Helper()
	it := &types.Item{
		ID:          uuid.New(),
		Name:        name,
		Description: "test item",
		Category:    "Apparel",
		Price:       price,
		Stock:       stock,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return it
}

func SeedCartItem(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, qty int) *types.CartItem {
	tb.Helper()
	ci := &types.CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: qty,
	}
	if err := tx.WithContext(ctx).Create(ci).Error; err != nil {
		tb.Fatalf("seed cart item: %v", err)
	}
	return ci
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, total decimal.Decimal, trackingNumber string) *types.Order {
	tb.Helper()
	o := &types.Order{
		ID:              uuid.New(),
		UserID:          userID,
		Status:          types.OrderStatusConfirmed,
		TotalAmount:     total,
		TrackingNumber:  trackingNumber,
		ShippingAddress: "1 Main St",
		ShippingCity:    "New York",
		ShippingState:   "NY",
		ShippingZip:     "10001",
		ShippingCountry: "USA",
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func SeedShipment(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID uuid.UUID, trackingNumber string, status types.ShipmentStatus, lastUpdated time.Time) *types.Shipment {
	tb.Helper()
	s := &types.Shipment{
		ID:                uuid.New(),
		OrderID:           orderID,
		TrackingNumber:    trackingNumber,
		Status:            status,
		Carrier:           "SwagShip Express",
		OriginLat:         37.7749,
		OriginLng:         -122.4194,
		DestLat:           40.7128,
		DestLng:           -74.0060,
		CurrentLat:        37.7749,
		CurrentLng:        -122.4194,
		EstimatedDelivery: lastUpdated.Add(5 * 24 * time.Hour),
		LastUpdated:       lastUpdated,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed shipment: %v", err)
	}
	return s
}

func SeedLedgerEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind types.EntryKind, amount decimal.Decimal, externalRef *string) *types.LedgerEntry {
	tb.Helper()
	e := &types.LedgerEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		ExternalRef: externalRef,
		Description: "test entry",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed ledger entry: %v", err)
	}
	return e
}

func PtrString(v string) *string { return &v }
