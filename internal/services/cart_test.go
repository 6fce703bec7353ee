package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catalogrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	"github.com/yungbote/swagship-backend/internal/data/repos/testutil"
)

func newCartService(t *testing.T, tx *gorm.DB) CartService {
	t.Helper()
	log := testutil.Logger(t)
	return NewCartService(tx, log, catalogrepo.NewCartRepo(tx, log), catalogrepo.NewItemRepo(tx, log))
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCartService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "cart-clamp@test.dev", decimal.Zero)
	item := testutil.SeedItem(t, ctx, tx, "Sticker Pack", decimal.NewFromInt(5), 100)

	line, err := svc.AddItem(ctx, user.ID, item.ID, 7)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if line.Quantity != 7 {
		t.Fatalf("quantity: want=7 got=%d", line.Quantity)
	}

	// Adding onto the same line upserts then clamps at the cap.
	line, err = svc.AddItem(ctx, user.ID, item.ID, 7)
	if err != nil {
		t.Fatalf("second AddItem: %v", err)
	}
	if line.Quantity != 10 {
		t.Fatalf("clamped quantity: want=10 got=%d", line.Quantity)
	}

	view, err := svc.GetCart(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 1 || view.Count != 10 {
		t.Fatalf("cart view: lines=%d count=%d", len(view.Items), view.Count)
	}
	if !view.Subtotal.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("subtotal: want=50 got=%s", view.Subtotal)
	}
}

func TestCartAddItemRejectsOutOfStock(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCartService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "cart-oos@test.dev", decimal.Zero)
	item := testutil.SeedItem(t, ctx, tx, "Sold Out Tee", decimal.NewFromInt(20), 0)

	_, err := svc.AddItem(ctx, user.ID, item.ID, 1)
	if !IsInsufficientStock(err) {
		t.Fatalf("AddItem: want InsufficientStockError, got %v", err)
	}

	if _, err := svc.AddItem(ctx, user.ID, uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddItem unknown item: want ErrNotFound, got %v", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCartService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "cart-update@test.dev", decimal.Zero)
	item := testutil.SeedItem(t, ctx, tx, "Coffee Mug", decimal.NewFromInt(12), 50)
	line := testutil.SeedCartItem(t, ctx, tx, user.ID, item.ID, 2)

	if err := svc.UpdateQuantity(ctx, user.ID, line.ID, 25); err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	view, err := svc.GetCart(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if view.Count != 10 {
		t.Fatalf("quantity above cap not clamped: want=10 got=%d", view.Count)
	}

	// Zero removes the line.
	if err := svc.UpdateQuantity(ctx, user.ID, line.ID, 0); err != nil {
		t.Fatalf("UpdateQuantity to zero: %v", err)
	}
	view, err = svc.GetCart(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("line not removed: %d remain", len(view.Items))
	}

	if err := svc.UpdateQuantity(ctx, user.ID, line.ID, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateQuantity on removed line: want ErrNotFound, got %v", err)
	}
}

func TestCartOwnershipAndClear(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCartService(t, tx)

	owner := testutil.SeedUser(t, ctx, tx, "cart-owner@test.dev", decimal.Zero)
	other := testutil.SeedUser(t, ctx, tx, "cart-other@test.dev", decimal.Zero)
	item := testutil.SeedItem(t, ctx, tx, "Water Bottle", decimal.NewFromInt(18), 30)
	line := testutil.SeedCartItem(t, ctx, tx, owner.ID, item.ID, 2)

	if err := svc.RemoveItem(ctx, other.ID, line.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemoveItem as stranger: want ErrNotFound, got %v", err)
	}

	if err := svc.ClearCart(ctx, owner.ID); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	view, err := svc.GetCart(ctx, owner.ID)
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("cart not cleared: %d lines remain", len(view.Items))
	}
}
