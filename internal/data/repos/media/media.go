package media

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	mediadomain "github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type MediaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.MediaRecord) ([]*types.MediaRecord, error)

	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MediaRecord, error)
	GetByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) ([]*types.MediaRecord, error)

	// FetchBatch resolves every descriptor in one store round trip. Descriptors
	// with an empty id set are skipped; if nothing remains no query is issued.
	FetchBatch(ctx context.Context, tx *gorm.DB, descriptors []mediadomain.ResourceDescriptor) ([]*types.MediaRecord, error)

	UpdatePosition(ctx context.Context, tx *gorm.DB, id uuid.UUID, position int) error

	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	SoftDeleteByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) error
	FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type mediaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMediaRepo(db *gorm.DB, baseLog *logger.Logger) MediaRepo {
	return &mediaRepo{db: db, log: baseLog.With("repo", "MediaRepo")}
}

func (r *mediaRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.MediaRecord) ([]*types.MediaRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.MediaRecord{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mediaRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MediaRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MediaRecord
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mediaRepo) GetByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) ([]*types.MediaRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.MediaRecord
	if !resourceType.Valid() || resourceID == uuid.Nil {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("position ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mediaRepo) FetchBatch(ctx context.Context, tx *gorm.DB, descriptors []mediadomain.ResourceDescriptor) ([]*types.MediaRecord, error) {
	t := tx
	if t == nil {
		t = r.db
	}

	var out []*types.MediaRecord

	// One OR-combined condition per non-empty descriptor:
	// resource_type = T AND resource_id IN (..) [AND tag IN (..)]
	var cond *gorm.DB
	for _, d := range descriptors {
		ids := d.DedupedIDs()
		if len(ids) == 0 {
			continue
		}
		sub := t.Session(&gorm.Session{NewDB: true}).
			Where("resource_type = ? AND resource_id IN ?", d.Type, ids)
		if len(d.Tags) > 0 {
			sub = sub.Where("tag IN ?", d.Tags)
		}
		if cond == nil {
			cond = sub
		} else {
			cond = cond.Or(sub)
		}
	}
	if cond == nil {
		return out, nil
	}

	if err := t.WithContext(ctx).
		Where(cond).
		Order("position ASC, created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mediaRepo) UpdatePosition(ctx context.Context, tx *gorm.DB, id uuid.UUID, position int) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.MediaRecord{}).
		Where("id = ?", id).
		Update("position", position).Error
}

func (r *mediaRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&types.MediaRecord{}).Error
}

func (r *mediaRepo) SoftDeleteByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if !resourceType.Valid() || resourceID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Delete(&types.MediaRecord{}).Error
}

func (r *mediaRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Unscoped().
		Where("id IN ?", ids).
		Delete(&types.MediaRecord{}).Error
}
