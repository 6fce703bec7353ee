package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catrepo "github.com/yungbote/swagship-backend/internal/data/repos/catalog"
	types "github.com/yungbote/swagship-backend/internal/domain"
	"github.com/yungbote/swagship-backend/internal/pkg/logger"
)

type ItemPage struct {
	Items      []*types.Item `json:"items"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

type CatalogService interface {
	ListItems(ctx context.Context, filter catrepo.ItemFilter, page, limit int) (*ItemPage, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*types.Item, error)
	Categories(ctx context.Context) ([]catrepo.CategoryCount, error)
}

type catalogService struct {
	db    *gorm.DB
	log   *logger.Logger
	items catrepo.ItemRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, items catrepo.ItemRepo) CatalogService {
	return &catalogService{db: db, log: log.With("service", "CatalogService"), items: items}
}

func (cs *catalogService) ListItems(ctx context.Context, filter catrepo.ItemFilter, page, limit int) (*ItemPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	items, total, err := cs.items.List(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ItemPage{Items: items, Total: total, Page: page, TotalPages: totalPages}, nil
}

func (cs *catalogService) GetItem(ctx context.Context, itemID uuid.UUID) (*types.Item, error) {
	items, err := cs.items.GetByIDs(ctx, nil, []uuid.UUID{itemID})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	return items[0], nil
}

func (cs *catalogService) Categories(ctx context.Context) ([]catrepo.CategoryCount, error) {
	return cs.items.Categories(ctx, nil)
}
