package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error)
	GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	// GetBalance reads the authoritative running balance.
	GetBalance(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (decimal.Decimal, error)
	// AddToBalance applies a signed delta guarded so the balance cannot go
	// negative. Returns false without mutating when the guard rejects the
	// delta or the user does not exist.
	AddToBalance(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta decimal.Decimal) (bool, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if len(emails) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("email IN ?", emails).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) GetBalance(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (decimal.Decimal, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var balance decimal.Decimal
	err := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Pluck("credit_balance", &balance).Error
	if err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (ur *userRepo) AddToBalance(ctx context.Context, tx *gorm.DB, userID uuid.UUID, delta decimal.Decimal) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	// The WHERE guard re-validates at write time, closing the race between a
	// prior balance read and this update under concurrent spends.
	res := transaction.WithContext(ctx).
		Model(&types.User{}).
		Where("id = ? AND credit_balance + ? >= 0", userID, delta).
		Update("credit_balance", gorm.Expr("credit_balance + ?", delta))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
