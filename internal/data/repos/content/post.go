package content

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error)
	GetByAuthorIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Post, error)
	ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Post, error)
	Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Post, error)
	Update(ctx context.Context, tx *gorm.DB, post *types.Post) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(posts) == 0 {
		return []*types.Post{}, nil
	}
	if err := t.WithContext(ctx).Create(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) GetByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) ([]*types.Post, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Post
	if len(postIDs) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", postIDs).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postRepo) GetByAuthorIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Post, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Post
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

func (r *postRepo) ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Post, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if limit <= 0 {
		limit = 20
	}
	var out []*types.Post
	if err := t.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Post, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Post
	query = strings.TrimSpace(query)
	if query == "" {
		return out, nil
	}
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + query + "%"
	if err := t.WithContext(ctx).
		Where("published = ?", true).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(body) LIKE LOWER(?)", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *postRepo) Update(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if post == nil || post.ID == uuid.Nil {
		return nil
	}
	return t.WithContext(ctx).Save(post).Error
}

func (r *postRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, postIDs []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(postIDs) == 0 {
		return nil
	}
	return t.WithContext(ctx).
		Where("id IN ?", postIDs).
		Delete(&types.Post{}).Error
}
