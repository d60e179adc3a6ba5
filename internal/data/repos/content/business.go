package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type BusinessRepo interface {
	Create(ctx context.Context, tx *gorm.DB, businesses []*types.Business) ([]*types.Business, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, businessIDs []uuid.UUID) ([]*types.Business, error)
	GetByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.Business, error)
	GetByLocationIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Business, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Business, error)
	Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Business, error)
	Update(ctx context.Context, tx *gorm.DB, business *types.Business) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, businessIDs []uuid.UUID) error
}

type businessRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBusinessRepo(db *gorm.DB, baseLog *logger.Logger) BusinessRepo {
	return &businessRepo{db: db, log: baseLog.With("repo", "BusinessRepo")}
}

func (r *businessRepo) Create(ctx context.Context, tx *gorm.DB, businesses []*types.Business) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(businesses) == 0 {
		return []*types.Business{}, nil
	}
	if err := t.WithContext(ctx).Create(&businesses).Error; err != nil {
		return nil, err
	}
	return businesses, nil
}

func (r *businessRepo) GetByIDs(ctx context.Context, tx *gorm.DB, businessIDs []uuid.UUID) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Business
	if len(businessIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", businessIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessRepo) GetByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Business
	if len(ownerIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessRepo) GetByLocationIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Business
	if len(locationIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("location_id IN ?", locationIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 20
	}
	var out []*types.Business
	if err := t.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Business, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Business
	query = strings.TrimSpace(query)
	if query == "" {
		return out, nil
	}
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	if err := t.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *businessRepo) Update(ctx context.Context, tx *gorm.DB, business *types.Business) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if business == nil || business.ID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Save(business).Error
}

func (r *businessRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, businessIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(businessIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", businessIDs).
		Delete(&types.Business{}).Error
}
