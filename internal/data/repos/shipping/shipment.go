package shipping

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type ShipmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, s *types.Shipment) (*types.Shipment, error)
	GetByOrderID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Shipment, error)
	GetByTrackingNumber(ctx context.Context, tx *gorm.DB, trackingNumber string) (*types.Shipment, error)
	// Advance moves a shipment from one status to the next. The WHERE clause
	// is keyed on the prior status, so concurrent write-backs of the same
	// transition converge and a shipment can never be moved backwards.
	Advance(ctx context.Context, tx *gorm.DB, shipmentID uuid.UUID, from, to types.ShipmentStatus, lat, lng float64, at time.Time) (bool, error)
}

type shipmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShipmentRepo(db *gorm.DB, baseLog *logger.Logger) ShipmentRepo {
	return &shipmentRepo{db: db, log: baseLog.With("repo", "ShipmentRepo")}
}

func (sr *shipmentRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Shipment) (*types.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (sr *shipmentRepo) GetByOrderID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var row types.Shipment
	err := transaction.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (sr *shipmentRepo) GetByTrackingNumber(ctx context.Context, tx *gorm.DB, trackingNumber string) (*types.Shipment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var row types.Shipment
	err := transaction.WithContext(ctx).
		Where("tracking_number = ?", trackingNumber).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (sr *shipmentRepo) Advance(ctx context.Context, tx *gorm.DB, shipmentID uuid.UUID, from, to types.ShipmentStatus, lat, lng float64, at time.Time) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Shipment{}).
		Where("id = ? AND status = ?", shipmentID, from).
		Updates(map[string]any{
			"status":       to,
			"current_lat":  lat,
			"current_lng":  lng,
			"last_updated": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
