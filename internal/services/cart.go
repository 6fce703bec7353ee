package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	catrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

// maxLineQuantity caps a single cart line. Stock at add time is advisory
// only; the binding check happens at checkout.
const maxLineQuantity = 10

type CartView struct {
	Items    []*types.CartItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
	Count    int               `json:"count"`
}

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*types.CartItem, error)
	// UpdateQuantity sets a line's quantity; zero removes the line.
	UpdateQuantity(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	db    *gorm.DB
	log   *logger.Logger
	cart  catrepo.CartRepo
	items catrepo.ItemRepo
}

func NewCartService(db *gorm.DB, log *logger.Logger, cart catrepo.CartRepo, items catrepo.ItemRepo) CartService {
	return &cartService{db: db, log: log.With("service", "CartService"), cart: cart, items: items}
}

func (cs *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	lines, err := cs.cart.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	subtotal := decimal.Zero
	count := 0
	for _, line := range lines {
		if line.Item != nil {
			subtotal = subtotal.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
		count += line.Quantity
	}
	return &CartView{Items: lines, Subtotal: subtotal.Round(2), Count: count}, nil
}

func (cs *cartService) AddItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*types.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	items, err := cs.items.GetByIDs(ctx, nil, []uuid.UUID{itemID})
	if err != nil || len(items) == 0 {
		if errors.Is(err, gorm.ErrRecordNotFound) || len(items) == 0 {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	item := items[0]
	if item.Stock < 1 {
		return nil, &InsufficientStockError{
			ItemID: item.ID, ItemName: item.Name,
			Available: item.Stock, Requested: quantity,
		}
	}

	line, err := cs.cart.AddQuantity(ctx, nil, userID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	if line.Quantity > maxLineQuantity {
		if err := cs.cart.SetQuantity(ctx, nil, line.ID, maxLineQuantity); err != nil {
			return nil, fmt.Errorf("clamp cart quantity: %w", err)
		}
		line.Quantity = maxLineQuantity
	}
	line.Item = item
	return line, nil
}

func (cs *cartService) UpdateQuantity(ctx context.Context, userID, cartItemID uuid.UUID, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	line, err := cs.cart.GetByID(ctx, nil, userID, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get cart item %s: %w", cartItemID, err)
	}
	if quantity == 0 {
		return cs.cart.DeleteByID(ctx, nil, line.ID)
	}
	if quantity > maxLineQuantity {
		quantity = maxLineQuantity
	}
	return cs.cart.SetQuantity(ctx, nil, line.ID, quantity)
}

func (cs *cartService) RemoveItem(ctx context.Context, userID, cartItemID uuid.UUID) error {
	line, err := cs.cart.GetByID(ctx, nil, userID, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get cart item %s: %w", cartItemID, err)
	}
	return cs.cart.DeleteByID(ctx, nil, line.ID)
}

func (cs *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return cs.cart.ClearByUserID(ctx, nil, userID)
}
