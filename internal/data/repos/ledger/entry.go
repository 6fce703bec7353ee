package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

// EntryRepo is append-only: there are deliberately no update or delete
// operations on ledger entries.
type EntryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.LedgerEntry) ([]*types.LedgerEntry, error)
	ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.LedgerEntry, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	// SumByUserID computes the reconciliation total: Σ amount over the user's
	// entries, which must equal the account's running balance.
	SumByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (decimal.Decimal, error)
	ExternalRefExists(ctx context.Context, tx *gorm.DB, externalRef string) (bool, error)
}

type entryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEntryRepo(db *gorm.DB, baseLog *logger.Logger) EntryRepo {
	return &entryRepo{db: db, log: baseLog.With("repo", "LedgerEntryRepo")}
}

func (er *entryRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.LedgerEntry) ([]*types.LedgerEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if len(entries) == 0 {
		return []*types.LedgerEntry{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (er *entryRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, offset, limit int) ([]*types.LedgerEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.LedgerEntry
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *entryRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.LedgerEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (er *entryRepo) SumByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (decimal.Decimal, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var sum decimal.NullDecimal
	if err := transaction.WithContext(ctx).
		Model(&types.LedgerEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}

func (er *entryRepo) ExternalRefExists(ctx context.Context, tx *gorm.DB, externalRef string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.LedgerEntry{}).
		Where("external_ref = ?", externalRef).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
