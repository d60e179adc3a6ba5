package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

// PostView is a post plus everything the feed needs to render it.
type PostView struct {
	Post          *types.Post      `json:"post"`
	FeaturedImage *media.Processed `json:"featured_image,omitempty"`
	Gallery       []media.Processed `json:"gallery,omitempty"`
	AuthorAvatar  *media.Processed `json:"author_avatar,omitempty"`
}

type PostService interface {
	ListPublished(ctx context.Context, limit, offset int) ([]*PostView, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*PostView, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*PostView, error)
	CreatePost(ctx context.Context, post *types.Post) (*types.Post, error)
	UpdatePost(ctx context.Context, post *types.Post) error
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

type postService struct {
	db           *gorm.DB
	log          *logger.Logger
	postRepo     repos.PostRepo
	commentRepo  repos.CommentRepo
	mediaService MediaService
}

func NewPostService(db *gorm.DB, log *logger.Logger, postRepo repos.PostRepo, commentRepo repos.CommentRepo, mediaService MediaService) PostService {
	serviceLog := log.With("service", "PostService")
	return &postService{db: db, log: serviceLog, postRepo: postRepo, commentRepo: commentRepo, mediaService: mediaService}
}

func (ps *postService) ListPublished(ctx context.Context, limit, offset int) ([]*PostView, error) {
	posts, err := ps.postRepo.ListPublished(ctx, nil, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return ps.assemble(ctx, posts)
}

func (ps *postService) GetPost(ctx context.Context, postID uuid.UUID) (*PostView, error) {
	posts, err := ps.postRepo.GetByIDs(ctx, nil, []uuid.UUID{postID})
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	views, err := ps.assemble(ctx, posts)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (ps *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*PostView, error) {
	posts, err := ps.postRepo.GetByAuthorIDs(ctx, nil, []uuid.UUID{authorID})
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}
	return ps.assemble(ctx, posts)
}

// assemble resolves media for the whole page in one round trip.
func (ps *postService) assemble(ctx context.Context, posts []*types.Post) ([]*PostView, error) {
	if len(posts) == 0 {
		return []*PostView{}, nil
	}
	maps, err := ps.mediaService.Resolve(ctx, nil, postPageDescriptors(posts))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post media: %w", err)
	}
	return buildPostViews(posts, maps), nil
}

func postPageDescriptors(posts []*types.Post) []media.ResourceDescriptor {
	postIDs := make([]uuid.UUID, 0, len(posts))
	authorIDs := make([]uuid.UUID, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
		authorIDs = append(authorIDs, p.AuthorID)
	}
	return []media.ResourceDescriptor{
		{Type: media.ResourcePost, IDs: postIDs, Tags: []types.MediaTag{media.TagFeaturedImage, media.TagGallery}},
		{Type: media.ResourceUserProfile, IDs: authorIDs, Tags: []types.MediaTag{media.TagProfilePic}},
	}
}

func buildPostViews(posts []*types.Post, maps *media.Maps) []*PostView {
	views := make([]*PostView, 0, len(posts))
	for _, p := range posts {
		view := &PostView{Post: p, Gallery: maps.Galleries[p.ID]}
		if img, ok := maps.FeaturedImages[p.ID]; ok {
			view.FeaturedImage = &img
		}
		if ava, ok := maps.ProfilePics[p.AuthorID]; ok {
			view.AuthorAvatar = &ava
		}
		views = append(views, view)
	}
	return views
}

func (ps *postService) CreatePost(ctx context.Context, post *types.Post) (*types.Post, error) {
	if post == nil {
		return nil, fmt.Errorf("post is nil")
	}
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return nil, fmt.Errorf("post title is required")
	}
	if post.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("post has no author")
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	created, err := ps.postRepo.Create(ctx, nil, []*types.Post{post})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return created[0], nil
}

func (ps *postService) UpdatePost(ctx context.Context, post *types.Post) error {
	if post == nil || post.ID == uuid.Nil {
		return fmt.Errorf("post has no id")
	}
	return ps.postRepo.Update(ctx, nil, post)
}

// DeletePost removes the post together with its comments and media.
func (ps *postService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ps.postRepo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{postID}); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		if err := ps.commentRepo.SoftDeleteBySubject(ctx, tx, types.CommentSubjectPost, postID); err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}
		if err := ps.mediaService.DetachAllForResource(ctx, tx, media.ResourcePost, postID); err != nil {
			return fmt.Errorf("failed to detach post media: %w", err)
		}
		return nil
	})
}
