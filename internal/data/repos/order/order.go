package order

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type OrderRepo interface {
	// Create inserts the order together with its lines.
	Create(ctx context.Context, tx *gorm.DB, o *types.Order) (*types.Order, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, orderID uuid.UUID) (*types.Order, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Order, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	TrackingNumberExists(ctx context.Context, tx *gorm.DB, trackingNumber string) (bool, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, orderID uuid.UUID) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var row types.Order
	err := transaction.WithContext(ctx).
		Preload("Lines.Item").
		Preload("Shipment").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (or *orderRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var results []*types.Order
	if err := transaction.WithContext(ctx).
		Preload("Lines.Item").
		Preload("Shipment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (or *orderRepo) TrackingNumberExists(ctx context.Context, tx *gorm.DB, trackingNumber string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
