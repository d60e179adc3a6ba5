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
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/ctxutil"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type ProfileView struct {
	User       *types.User      `json:"user"`
	ProfilePic *media.Processed `json:"profile_pic,omitempty"`
	Banner     *media.Processed `json:"banner,omitempty"`
}

type UserService interface {
	GetMe(ctx context.Context) (*ProfileView, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, firstName, lastName, bio string) error
	DeleteMe(ctx context.Context) error
}

type userService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	tokenRepo    repos.UserTokenRepo
	mediaService MediaService
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, tokenRepo repos.UserTokenRepo, mediaService MediaService) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo, tokenRepo: tokenRepo, mediaService: mediaService}
}

func (us *userService) GetMe(ctx context.Context) (*ProfileView, error) {
	userID, err := requireUserID(ctx)
	if err != nil {
		return nil, err
	}
	return us.GetProfile(ctx, userID)
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	users, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}

	maps, err := us.mediaService.Resolve(ctx, nil, []media.ResourceDescriptor{
		{Type: media.ResourceUserProfile, IDs: []uuid.UUID{userID}, Tags: []types.MediaTag{media.TagProfilePic, media.TagBanner}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile media: %w", err)
	}

	view := &ProfileView{User: users[0]}
	if pic, ok := maps.ProfilePics[userID]; ok {
		view.ProfilePic = &pic
	}
	if banner, ok := maps.SingleMedia[userID]; ok {
		view.Banner = &banner
	}
	return view, nil
}

func (us *userService) UpdateProfile(ctx context.Context, firstName, lastName, bio string) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	return us.userRepo.UpdateProfile(ctx, nil, userID, firstName, lastName, strings.TrimSpace(bio))
}

// DeleteMe soft-deletes the account, drops its sessions, and detaches its
// profile media.
func (us *userService) DeleteMe(ctx context.Context) error {
	userID, err := requireUserID(ctx)
	if err != nil {
		return err
	}
	return us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := us.userRepo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{userID}); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if err := us.tokenRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{userID}); err != nil {
			return fmt.Errorf("failed to delete user tokens: %w", err)
		}
		if err := us.mediaService.DetachAllForResource(ctx, tx, media.ResourceUserProfile, userID); err != nil {
			return fmt.Errorf("failed to detach profile media: %w", err)
		}
		return nil
	})
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("no authenticated user in request context")
	}
	return rd.UserID, nil
}
