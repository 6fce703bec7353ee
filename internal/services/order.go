package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	accountrepo "github.com/yungbote/swagship-backend/internal/data/repos/account"
	catalogrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	orderrepo "github.com/yungbote/swagship-backend/internal/data/repos/order"
	shippingrepo "github.com/yungbote/swagship-backend/internal/data/repos/shipping"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

const (
	estimatedDeliveryWindow = 5 * 24 * time.Hour
	trackingAttempts        = 5
)

type OrderService interface {
	// PlaceOrder converts the user's cart into a confirmed order. Stock
	// check, credit debit, stock decrement, cart clear and shipment creation
	// commit together or not at all.
	PlaceOrder(ctx context.Context, userID uuid.UUID, addr Address) (*types.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*types.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*types.Order, int64, error)
}

type orderService struct {
	db        *gorm.DB
	log       *logger.Logger
	userRepo  accountrepo.UserRepo
	itemRepo  catalogrepo.ItemRepo
	cartRepo  catalogrepo.CartRepo
	orderRepo orderrepo.OrderRepo
	shipRepo  shippingrepo.ShipmentRepo
	ledger    LedgerService
	geocoder  Geocoder
}

func NewOrderService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo accountrepo.UserRepo,
	itemRepo catalogrepo.ItemRepo,
	cartRepo catalogrepo.CartRepo,
	orderRepo orderrepo.OrderRepo,
	shipRepo shippingrepo.ShipmentRepo,
	ledger LedgerService,
	geocoder Geocoder,
) OrderService {
	return &orderService{
		db:        db,
		log:       log.With("service", "OrderService"),
		userRepo:  userRepo,
		itemRepo:  itemRepo,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		shipRepo:  shipRepo,
		ledger:    ledger,
		geocoder:  geocoder,
	}
}

// orderTotal sums price*quantity over the cart and rounds half-up to cents.
func orderTotal(lines []*types.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		if line.Item == nil {
			continue
		}
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

func (os *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, addr Address) (*types.Order, error) {
	var placed *types.Order

	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartLines, err := os.cartRepo.GetByUserID(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("read cart: %w", err)
		}
		if len(cartLines) == 0 {
			return ErrEmptyCart
		}

		total := orderTotal(cartLines)

		// Fail fast against the authoritative balance; the ledger debit
		// below re-validates under its own guard at write time.
		balance, err := os.userRepo.GetBalance(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		if total.GreaterThan(balance) {
			return &InsufficientFundsError{Required: total, Available: balance}
		}

		// Validate every line before touching anything.
		for _, line := range cartLines {
			if line.Item == nil {
				return fmt.Errorf("cart line %s references missing item", line.ID)
			}
			if line.Quantity > line.Item.Stock {
				return &InsufficientStockError{
					ItemID:    line.ItemID,
					ItemName:  line.Item.Name,
					Available: line.Item.Stock,
					Requested: line.Quantity,
				}
			}
		}

		trackingNumber, err := os.uniqueTrackingNumber(ctx, tx)
		if err != nil {
			return err
		}

		order := &types.Order{
			ID:              uuid.New(),
			UserID:          userID,
			Status:          types.OrderStatusConfirmed,
			TotalAmount:     total,
			TrackingNumber:  trackingNumber,
			ShippingAddress: addr.Address,
			ShippingCity:    addr.City,
			ShippingState:   addr.State,
			ShippingZip:     addr.ZipCode,
			ShippingCountry: addr.Country,
		}
		for _, line := range cartLines {
			order.Lines = append(order.Lines, types.OrderLine{
				ID:              uuid.New(),
				OrderID:         order.ID,
				ItemID:          line.ItemID,
				Quantity:        line.Quantity,
				PriceAtPurchase: line.Item.Price,
			})
		}
		if _, err := os.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if _, err := os.ledger.ApplyEntry(ctx, tx, userID, types.KindOrderDebit, total.Neg(), nil,
			fmt.Sprintf("Order %s", order.ID)); err != nil {
			return err
		}

		// Guarded decrement re-checks stock at write time; a concurrent
		// order that drained the item since validation rolls us back here.
		for _, line := range cartLines {
			ok, err := os.itemRepo.DecrementStock(ctx, tx, line.ItemID, line.Quantity)
			if err != nil {
				return fmt.Errorf("decrement stock: %w", err)
			}
			if !ok {
				items, getErr := os.itemRepo.GetByIDs(ctx, tx, []uuid.UUID{line.ItemID})
				available := 0
				name := line.Item.Name
				if getErr == nil && len(items) == 1 {
					available = items[0].Stock
				}
				return &InsufficientStockError{
					ItemID:    line.ItemID,
					ItemName:  name,
					Available: available,
					Requested: line.Quantity,
				}
			}
		}

		if err := os.cartRepo.ClearByUserID(ctx, tx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		dest, err := os.geocoder.Geocode(ctx, addr)
		if err != nil {
			return fmt.Errorf("geocode destination: %w", err)
		}
		now := time.Now()
		shipment := &types.Shipment{
			ID:                uuid.New(),
			OrderID:           order.ID,
			TrackingNumber:    trackingNumber,
			Status:            types.ShipmentProcessing,
			OriginLat:         warehouseCoord.Lat,
			OriginLng:         warehouseCoord.Lng,
			DestLat:           dest.Lat,
			DestLng:           dest.Lng,
			CurrentLat:        warehouseCoord.Lat,
			CurrentLng:        warehouseCoord.Lng,
			EstimatedDelivery: now.Add(estimatedDeliveryWindow),
			LastUpdated:       now,
		}
		if _, err := os.shipRepo.Create(ctx, tx, shipment); err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	os.log.Info("Order placed",
		"order_id", placed.ID.String(),
		"user_id", userID.String(),
		"total", placed.TotalAmount.StringFixed(2),
		"tracking_number", placed.TrackingNumber,
	)
	return placed, nil
}

func (os *orderService) uniqueTrackingNumber(ctx context.Context, tx *gorm.DB) (string, error) {
	for i := 0; i < trackingAttempts; i++ {
		candidate := newTrackingNumber(time.Now())
		exists, err := os.orderRepo.TrackingNumberExists(ctx, tx, candidate)
		if err != nil {
			return "", fmt.Errorf("check tracking number: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not generate unique tracking number after %d attempts", trackingAttempts)
}

func (os *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*types.Order, error) {
	row, err := os.orderRepo.GetByID(ctx, nil, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (os *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, limit int) ([]*types.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	rows, err := os.orderRepo.ListByUserID(ctx, nil, userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := os.orderRepo.CountByUserID(ctx, nil, userID)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
