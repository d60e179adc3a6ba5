package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type LocationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, locations []*types.Location) ([]*types.Location, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Location, error)
	GetByCities(ctx context.Context, tx *gorm.DB, cities []string) ([]*types.Location, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Location, error)
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) error
}

type locationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLocationRepo(db *gorm.DB, baseLog *logger.Logger) LocationRepo {
	return &locationRepo{db: db, log: baseLog.With("repo", "LocationRepo")}
}

func (r *locationRepo) Create(ctx context.Context, tx *gorm.DB, locations []*types.Location) ([]*types.Location, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(locations) == 0 {
		return []*types.Location{}, nil
	}
	if err := t.WithContext(ctx).Create(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Location, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Location
	if len(locationIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", locationIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *locationRepo) GetByCities(ctx context.Context, tx *gorm.DB, cities []string) ([]*types.Location, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Location
	if len(cities) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("city IN ?", cities).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *locationRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Location, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var out []*types.Location
	if err := t.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *locationRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(locationIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", locationIDs).
		Delete(&types.Location{}).Error
}
