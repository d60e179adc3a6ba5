package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type NewsRepo interface {
	Create(ctx context.Context, tx *gorm.DB, items []*types.News) ([]*types.News, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, newsIDs []uuid.UUID) ([]*types.News, error)
	ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.News, error)
	Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.News, error)
	Update(ctx context.Context, tx *gorm.DB, item *types.News) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, newsIDs []uuid.UUID) error
}

type newsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNewsRepo(db *gorm.DB, baseLog *logger.Logger) NewsRepo {
	return &newsRepo{db: db, log: baseLog.With("repo", "NewsRepo")}
}

func (r *newsRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.News) ([]*types.News, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(items) == 0 {
		return []*types.News{}, nil
	}
	if err := t.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *newsRepo) GetByIDs(ctx context.Context, tx *gorm.DB, newsIDs []uuid.UUID) ([]*types.News, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.News
	if len(newsIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", newsIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *newsRepo) ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.News, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 20
	}
	var out []*types.News
	if err := t.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *newsRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.News, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.News
	query = strings.TrimSpace(query)
	if query == "" {
		return out, nil
	}
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	if err := t.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Where("LOWER(headline) LIKE LOWER(?) OR LOWER(body) LIKE LOWER(?)", pattern, pattern).
		Order("published_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *newsRepo) Update(ctx context.Context, tx *gorm.DB, item *types.News) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if item == nil || item.ID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Save(item).Error
}

func (r *newsRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, newsIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(newsIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", newsIDs).
		Delete(&types.News{}).Error
}
