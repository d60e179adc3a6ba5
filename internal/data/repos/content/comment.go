package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type CommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comments []*types.Comment) ([]*types.Comment, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, commentIDs []uuid.UUID) ([]*types.Comment, error)
	GetBySubject(ctx context.Context, tx *gorm.DB, subjectType string, subjectID uuid.UUID, limit, offset int) ([]*types.Comment, error)
	GetByAuthorIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Comment, error)
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, commentIDs []uuid.UUID) error
	SoftDeleteBySubject(ctx context.Context, tx *gorm.DB, subjectType string, subjectID uuid.UUID) error
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return &commentRepo{db: db, log: baseLog.With("repo", "CommentRepo")}
}

func (r *commentRepo) Create(ctx context.Context, tx *gorm.DB, comments []*types.Comment) ([]*types.Comment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(comments) == 0 {
		return []*types.Comment{}, nil
	}
	if err := t.WithContext(ctx).Create(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, commentIDs []uuid.UUID) ([]*types.Comment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Comment
	if len(commentIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", commentIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *commentRepo) GetBySubject(ctx context.Context, tx *gorm.DB, subjectType string, subjectID uuid.UUID, limit, offset int) ([]*types.Comment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Comment
	if subjectType == "" || subjectID == uuid.Nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if err := t.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *commentRepo) GetByAuthorIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Comment, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Comment
	if len(authorIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *commentRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, commentIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(commentIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", commentIDs).
		Delete(&types.Comment{}).Error
}

func (r *commentRepo) SoftDeleteBySubject(ctx context.Context, tx *gorm.DB, subjectType string, subjectID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if subjectType == "" || subjectID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Delete(&types.Comment{}).Error
}
