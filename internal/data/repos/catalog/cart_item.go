package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type CartRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, cartItemID uuid.UUID) (*types.CartItem, error)
	// AddQuantity upserts a user+item line, incrementing quantity when the
	// line already exists, and returns the resulting row.
	AddQuantity(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, qty int) (*types.CartItem, error)
	SetQuantity(ctx context.Context, tx *gorm.DB, cartItemID uuid.UUID, qty int) error
	DeleteByID(ctx context.Context, tx *gorm.DB, cartItemID uuid.UUID) error
	ClearByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return &cartRepo{db: db, log: baseLog.With("repo", "CartRepo")}
}

func (cr *cartRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.CartItem
	if err := transaction.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *cartRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, cartItemID uuid.UUID) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var row types.CartItem
	err := transaction.WithContext(ctx).
		Preload("Item").
		Where("id = ? AND user_id = ?", cartItemID, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (cr *cartRepo) AddQuantity(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, qty int) (*types.CartItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	row := &types.CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		ItemID:   itemID,
		Quantity: qty,
	}
	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_item.quantity + ?", qty),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Create(row).Error; err != nil {
		return nil, err
	}

	var result types.CartItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *cartRepo) SetQuantity(ctx context.Context, tx *gorm.DB, cartItemID uuid.UUID, qty int) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.CartItem{}).
		Where("id = ?", cartItemID).
		Update("quantity", qty).Error
}

func (cr *cartRepo) DeleteByID(ctx context.Context, tx *gorm.DB, cartItemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", cartItemID).
		Delete(&types.CartItem{}).Error
}

func (cr *cartRepo) ClearByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.CartItem{}).Error
}
