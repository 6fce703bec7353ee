package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type ItemFilter struct {
	Category  string
	Search    string
	SortBy    string
	SortDesc  bool
	Offset    int
	Limit     int
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type ItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.Item) ([]*types.Item, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.Item, error)
	List(ctx context.Context, tx *gorm.DB, filter ItemFilter) ([]*types.Item, int64, error)
	Categories(ctx context.Context, tx *gorm.DB) ([]CategoryCount, error)
	// DecrementStock subtracts qty under a non-negative guard. Returns false
	// without mutating when stock is short, so callers can roll back.
	DecrementStock(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, qty int) (bool, error)
}

type itemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
	return &itemRepo{db: db, log: baseLog.With("repo", "ItemRepo")}
}

func (ir *itemRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.Item) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(items) == 0 {
		return []*types.Item{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ir *itemRepo) GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.Item, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.Item
	if len(itemIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", itemIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

var sortableColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"category":   "category",
	"created_at": "created_at",
}

func (ir *itemRepo) List(ctx context.Context, tx *gorm.DB, filter ItemFilter) ([]*types.Item, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}

	q := transaction.WithContext(ctx).Model(&types.Item{})
	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortableColumns[strings.ToLower(filter.SortBy)]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	var results []*types.Item
	if err := q.
		Order(column + " " + direction).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (ir *itemRepo) Categories(ctx context.Context, tx *gorm.DB) ([]CategoryCount, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []CategoryCount
	if err := transaction.WithContext(ctx).
		Model(&types.Item{}).
		Select("category AS name, COUNT(id) AS count").
		Group("category").
		Order("category ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *itemRepo) DecrementStock(ctx context.Context, tx *gorm.DB, itemID uuid.UUID, qty int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Item{}).
		Where("id = ? AND stock >= ?", itemID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
