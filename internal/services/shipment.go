package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	shiprepo "github.com/yungbote/swagship-backend/internal/data/repos/shipping"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
	"github.com/yungbote/swagship-backend/internal/shipping/progress"
)

// TrackingInfo is a full tracking snapshot: the persisted shipment row plus
// everything derived from it at read time.
type TrackingInfo struct {
	Shipment          *types.Shipment  `json:"shipment"`
	StatusLabel       string           `json:"statusLabel"`
	ProgressPercent   int              `json:"progressPercent"`
	CurrentPosition   progress.Coord   `json:"currentPosition"`
	Route             []progress.Coord `json:"route"`
	Timeline          []progress.Event `json:"timeline"`
	EstimatedDelivery time.Time        `json:"estimatedDelivery"`
}

// ShipmentService materializes the simulated progress of a shipment whenever
// it is read. Transitions are written back lazily; a failed write-back is
// logged and the computed state returned anyway, since the next read will
// land the same transition.
type ShipmentService interface {
	TrackByOrder(ctx context.Context, userID, orderID uuid.UUID) (*TrackingInfo, error)
	TrackByNumber(ctx context.Context, userID uuid.UUID, trackingNumber string) (*TrackingInfo, error)
	// History returns just the event timeline for an order's shipment.
	History(ctx context.Context, userID, orderID uuid.UUID) ([]progress.Event, error)
}

type shipmentService struct {
	db        *gorm.DB
	log       *logger.Logger
	shipments shiprepo.ShipmentRepo
	orders    OrderService
	group     singleflight.Group
	now       func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

func NewShipmentService(db *gorm.DB, log *logger.Logger, shipments shiprepo.ShipmentRepo, orders OrderService) ShipmentService {
	return &shipmentService{
		db:        db,
		log:       log.With("service", "ShipmentService"),
		shipments: shipments,
		orders:    orders,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (ss *shipmentService) TrackByOrder(ctx context.Context, userID, orderID uuid.UUID) (*TrackingInfo, error) {
	ord, err := ss.orders.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	shipment, err := ss.shipments.GetByOrderID(ctx, nil, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get shipment for order %s: %w", orderID, err)
	}
	return ss.snapshot(ctx, shipment, ord.CreatedAt)
}

func (ss *shipmentService) TrackByNumber(ctx context.Context, userID uuid.UUID, trackingNumber string) (*TrackingInfo, error) {
	shipment, err := ss.shipments.GetByTrackingNumber(ctx, nil, trackingNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get shipment %s: %w", trackingNumber, err)
	}
	// Ownership check rides on the order lookup, which is scoped to the user.
	ord, err := ss.orders.GetOrder(ctx, userID, shipment.OrderID)
	if err != nil {
		return nil, err
	}
	return ss.snapshot(ctx, shipment, ord.CreatedAt)
}

func (ss *shipmentService) History(ctx context.Context, userID, orderID uuid.UUID) ([]progress.Event, error) {
	info, err := ss.TrackByOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return info.Timeline, nil
}

// snapshot evaluates the progress machine against the clock, persists a due
// transition, and renders the tracking view.
func (ss *shipmentService) snapshot(ctx context.Context, shipment *types.Shipment, orderCreatedAt time.Time) (*TrackingInfo, error) {
	now := ss.now()
	status := shipment.Status
	if next := progress.Next(status, shipment.LastUpdated, now); next != status {
		ss.advance(ctx, shipment, next, now)
		status = shipment.Status
	}

	origin := progress.Coord{Lat: shipment.OriginLat, Lng: shipment.OriginLng}
	dest := progress.Coord{Lat: shipment.DestLat, Lng: shipment.DestLng}

	ss.mu.Lock()
	pos := progress.Position(origin, dest, status, ss.rng)
	ss.mu.Unlock()

	return &TrackingInfo{
		Shipment:          shipment,
		StatusLabel:       progress.Label(status),
		ProgressPercent:   progress.Percent(status),
		CurrentPosition:   pos,
		Route:             progress.Route(origin, dest),
		Timeline:          progress.Timeline(orderCreatedAt, status),
		EstimatedDelivery: shipment.EstimatedDelivery,
	}, nil
}

// advance writes the transition back. Concurrent reads of the same shipment
// collapse onto one UPDATE; the guard on the prior status makes a lost race
// harmless either way.
func (ss *shipmentService) advance(ctx context.Context, shipment *types.Shipment, next types.ShipmentStatus, now time.Time) {
	from := shipment.Status
	origin := progress.Coord{Lat: shipment.OriginLat, Lng: shipment.OriginLng}
	dest := progress.Coord{Lat: shipment.DestLat, Lng: shipment.DestLng}
	pos := progress.Position(origin, dest, next, nil)

	key := shipment.ID.String() + ":" + string(next)
	_, err, _ := ss.group.Do(key, func() (any, error) {
		moved, err := ss.shipments.Advance(ctx, nil, shipment.ID, from, next, pos.Lat, pos.Lng, now)
		if err != nil {
			return nil, err
		}
		if moved {
			ss.log.Info("Shipment advanced",
				"shipment_id", shipment.ID.String(),
				"tracking_number", shipment.TrackingNumber,
				"from", string(from), "to", string(next))
		}
		return nil, nil
	})
	if err != nil {
		// Serve the computed state regardless; the transition lands on the
		// next read.
		ss.log.Error("Shipment write-back failed", "shipment_id", shipment.ID.String(), "error", err)
	}

	shipment.Status = next
	shipment.CurrentLat = pos.Lat
	shipment.CurrentLng = pos.Lng
	shipment.LastUpdated = now
}
