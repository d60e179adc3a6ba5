package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type NewsView struct {
	News          *types.News      `json:"news"`
	FeaturedImage *media.Processed `json:"featured_image,omitempty"`
	Gallery       []media.Processed `json:"gallery,omitempty"`
	AuthorAvatar  *media.Processed `json:"author_avatar,omitempty"`
}

type NewsService interface {
	ListPublished(ctx context.Context, limit, offset int) ([]*NewsView, error)
	GetNews(ctx context.Context, newsID uuid.UUID) (*NewsView, error)
	CreateNews(ctx context.Context, item *types.News) (*types.News, error)
	PublishNews(ctx context.Context, newsID uuid.UUID) error
	UpdateNews(ctx context.Context, item *types.News) error
	DeleteNews(ctx context.Context, newsID uuid.UUID) error
}

type newsService struct {
	db           *gorm.DB
	log          *logger.Logger
	newsRepo     repos.NewsRepo
	commentRepo  repos.CommentRepo
	mediaService MediaService
}

func NewNewsService(db *gorm.DB, log *logger.Logger, newsRepo repos.NewsRepo, commentRepo repos.CommentRepo, mediaService MediaService) NewsService {
	serviceLog := log.With("service", "NewsService")
	return &newsService{db: db, log: serviceLog, newsRepo: newsRepo, commentRepo: commentRepo, mediaService: mediaService}
}

func (ns *newsService) ListPublished(ctx context.Context, limit, offset int) ([]*NewsView, error) {
	items, err := ns.newsRepo.ListPublished(ctx, nil, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return ns.assemble(ctx, items)
}

func (ns *newsService) GetNews(ctx context.Context, newsID uuid.UUID) (*NewsView, error) {
	items, err := ns.newsRepo.GetByIDs(ctx, nil, []uuid.UUID{newsID})
	if err != nil {
		return nil, fmt.Errorf("failed to load news item: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	views, err := ns.assemble(ctx, items)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (ns *newsService) assemble(ctx context.Context, items []*types.News) ([]*NewsView, error) {
	if len(items) == 0 {
		return []*NewsView{}, nil
	}
	maps, err := ns.mediaService.Resolve(ctx, nil, newsPageDescriptors(items))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve news media: %w", err)
	}
	return buildNewsViews(items, maps), nil
}

func newsPageDescriptors(items []*types.News) []media.ResourceDescriptor {
	newsIDs := make([]uuid.UUID, 0, len(items))
	authorIDs := make([]uuid.UUID, 0, len(items))
	for _, n := range items {
		newsIDs = append(newsIDs, n.ID)
		authorIDs = append(authorIDs, n.AuthorID)
	}
	return []media.ResourceDescriptor{
		{Type: media.ResourceNews, IDs: newsIDs, Tags: []types.MediaTag{media.TagFeaturedImage, media.TagGallery}},
		{Type: media.ResourceUserProfile, IDs: authorIDs, Tags: []types.MediaTag{media.TagProfilePic}},
	}
}

func buildNewsViews(items []*types.News, maps *media.Maps) []*NewsView {
	views := make([]*NewsView, 0, len(items))
	for _, n := range items {
		view := &NewsView{News: n, Gallery: maps.Galleries[n.ID]}
		if img, ok := maps.FeaturedImages[n.ID]; ok {
			view.FeaturedImage = &img
		}
		if ava, ok := maps.ProfilePics[n.AuthorID]; ok {
			view.AuthorAvatar = &ava
		}
		views = append(views, view)
	}
	return views
}

func (ns *newsService) CreateNews(ctx context.Context, item *types.News) (*types.News, error) {
	if item == nil {
		return nil, fmt.Errorf("news item is nil")
	}
	item.Headline = strings.TrimSpace(item.Headline)
	if item.Headline == "" {
		return nil, fmt.Errorf("headline is required")
	}
	if item.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("news item has no author")
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	created, err := ns.newsRepo.Create(ctx, nil, []*types.News{item})
	if err != nil {
		return nil, fmt.Errorf("failed to create news item: %w", err)
	}
	return created[0], nil
}

func (ns *newsService) PublishNews(ctx context.Context, newsID uuid.UUID) error {
	items, err := ns.newsRepo.GetByIDs(ctx, nil, []uuid.UUID{newsID})
	if err != nil {
		return fmt.Errorf("failed to load news item: %w", err)
	}
	if len(items) == 0 {
		return fmt.Errorf("news item not found")
	}
	item := items[0]
	if item.PublishedAt != nil {
		return nil
	}
	now := time.Now()
	item.PublishedAt = &now
	return ns.newsRepo.Update(ctx, nil, item)
}

func (ns *newsService) UpdateNews(ctx context.Context, item *types.News) error {
	if item == nil || item.ID == uuid.Nil {
		return fmt.Errorf("news item has no id")
	}
	return ns.newsRepo.Update(ctx, nil, item)
}

func (ns *newsService) DeleteNews(ctx context.Context, newsID uuid.UUID) error {
	return ns.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ns.newsRepo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{newsID}); err != nil {
			return fmt.Errorf("failed to delete news item: %w", err)
		}
		if err := ns.commentRepo.SoftDeleteBySubject(ctx, tx, types.CommentSubjectNews, newsID); err != nil {
			return fmt.Errorf("failed to delete news comments: %w", err)
		}
		if err := ns.mediaService.DetachAllForResource(ctx, tx, media.ResourceNews, newsID); err != nil {
			return fmt.Errorf("failed to detach news media: %w", err)
		}
		return nil
	})
}
