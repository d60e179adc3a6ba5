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

type CommentView struct {
	Comment      *types.Comment   `json:"comment"`
	Attachment   *media.Processed `json:"attachment,omitempty"`
	AuthorAvatar *media.Processed `json:"author_avatar,omitempty"`
}

type CommentService interface {
	ListForSubject(ctx context.Context, subjectType string, subjectID uuid.UUID, limit, offset int) ([]*CommentView, error)
	CreateComment(ctx context.Context, comment *types.Comment) (*types.Comment, error)
	DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error
}

type commentService struct {
	db           *gorm.DB
	log          *logger.Logger
	commentRepo  repos.CommentRepo
	mediaService MediaService
}

func NewCommentService(db *gorm.DB, log *logger.Logger, commentRepo repos.CommentRepo, mediaService MediaService) CommentService {
	serviceLog := log.With("service", "CommentService")
	return &commentService{db: db, log: serviceLog, commentRepo: commentRepo, mediaService: mediaService}
}

func (cs *commentService) ListForSubject(ctx context.Context, subjectType string, subjectID uuid.UUID, limit, offset int) ([]*CommentView, error) {
	if err := types.ValidCommentSubject(subjectType); err != nil {
		return nil, err
	}
	comments, err := cs.commentRepo.GetBySubject(ctx, nil, subjectType, subjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) == 0 {
		return []*CommentView{}, nil
	}

	commentIDs := make([]uuid.UUID, 0, len(comments))
	authorIDs := make([]uuid.UUID, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.ID)
		authorIDs = append(authorIDs, c.AuthorID)
	}
	maps, err := cs.mediaService.Resolve(ctx, nil, []media.ResourceDescriptor{
		{Type: media.ResourceComment, IDs: commentIDs, Tags: []types.MediaTag{media.TagAttachment}},
		{Type: media.ResourceUserProfile, IDs: authorIDs, Tags: []types.MediaTag{media.TagProfilePic}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment media: %w", err)
	}

	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		view := &CommentView{Comment: c}
		if att, ok := maps.SingleMedia[c.ID]; ok {
			view.Attachment = &att
		}
		if ava, ok := maps.ProfilePics[c.AuthorID]; ok {
			view.AuthorAvatar = &ava
		}
		views = append(views, view)
	}
	return views, nil
}

func (cs *commentService) CreateComment(ctx context.Context, comment *types.Comment) (*types.Comment, error) {
	if comment == nil {
		return nil, fmt.Errorf("comment is nil")
	}
	if err := types.ValidCommentSubject(comment.SubjectType); err != nil {
		return nil, err
	}
	comment.Body = strings.TrimSpace(comment.Body)
	if comment.Body == "" {
		return nil, fmt.Errorf("comment body is required")
	}
	if comment.AuthorID == uuid.Nil {
		return nil, fmt.Errorf("comment has no author")
	}
	if comment.SubjectID == uuid.Nil {
		return nil, fmt.Errorf("comment has no subject")
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	created, err := cs.commentRepo.Create(ctx, nil, []*types.Comment{comment})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return created[0], nil
}

func (cs *commentService) DeleteComment(ctx context.Context, actorID, commentID uuid.UUID) error {
	comments, err := cs.commentRepo.GetByIDs(ctx, nil, []uuid.UUID{commentID})
	if err != nil {
		return fmt.Errorf("failed to load comment: %w", err)
	}
	if len(comments) == 0 {
		return fmt.Errorf("comment not found")
	}
	if comments[0].AuthorID != actorID {
		return fmt.Errorf("not the comment author")
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cs.commentRepo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{commentID}); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		if err := cs.mediaService.DetachAllForResource(ctx, tx, media.ResourceComment, commentID); err != nil {
			return fmt.Errorf("failed to detach comment media: %w", err)
		}
		return nil
	})
}
