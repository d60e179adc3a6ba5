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

type BusinessView struct {
	Business *types.Business   `json:"business"`
	Logo     *media.Processed  `json:"logo,omitempty"`
	Gallery  []media.Processed `json:"gallery,omitempty"`
	Location *types.Location   `json:"location,omitempty"`
}

type BusinessService interface {
	List(ctx context.Context, limit, offset int) ([]*BusinessView, error)
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BusinessView, error)
	CreateBusiness(ctx context.Context, business *types.Business) (*types.Business, error)
	UpdateBusiness(ctx context.Context, actorID uuid.UUID, business *types.Business) error
	DeleteBusiness(ctx context.Context, actorID, businessID uuid.UUID) error
}

type businessService struct {
	db           *gorm.DB
	log          *logger.Logger
	businessRepo repos.BusinessRepo
	locationRepo repos.LocationRepo
	commentRepo  repos.CommentRepo
	mediaService MediaService
}

func NewBusinessService(
	db *gorm.DB,
	log *logger.Logger,
	businessRepo repos.BusinessRepo,
	locationRepo repos.LocationRepo,
	commentRepo repos.CommentRepo,
	mediaService MediaService,
) BusinessService {
	serviceLog := log.With("service", "BusinessService")
	return &businessService{
		db:           db,
		log:          serviceLog,
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		mediaService: mediaService,
	}
}

func (bs *businessService) List(ctx context.Context, limit, offset int) ([]*BusinessView, error) {
	businesses, err := bs.businessRepo.List(ctx, nil, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return bs.assemble(ctx, businesses)
}

func (bs *businessService) GetBusiness(ctx context.Context, businessID uuid.UUID) (*BusinessView, error) {
	businesses, err := bs.businessRepo.GetByIDs(ctx, nil, []uuid.UUID{businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to load business: %w", err)
	}
	if len(businesses) == 0 {
		return nil, nil
	}
	views, err := bs.assemble(ctx, businesses)
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (bs *businessService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*BusinessView, error) {
	businesses, err := bs.businessRepo.GetByOwnerIDs(ctx, nil, []uuid.UUID{ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list owner businesses: %w", err)
	}
	return bs.assemble(ctx, businesses)
}

func (bs *businessService) assemble(ctx context.Context, businesses []*types.Business) ([]*BusinessView, error) {
	if len(businesses) == 0 {
		return []*BusinessView{}, nil
	}
	maps, err := bs.mediaService.Resolve(ctx, nil, businessPageDescriptors(businesses))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve business media: %w", err)
	}

	locationIDs := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		if b.LocationID != nil {
			locationIDs = append(locationIDs, *b.LocationID)
		}
	}
	locByID := map[uuid.UUID]*types.Location{}
	if len(locationIDs) > 0 {
		locations, err := bs.locationRepo.GetByIDs(ctx, nil, locationIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load business locations: %w", err)
		}
		for _, loc := range locations {
			locByID[loc.ID] = loc
		}
	}
	return buildBusinessViews(businesses, maps, locByID), nil
}

func businessPageDescriptors(businesses []*types.Business) []media.ResourceDescriptor {
	ids := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		ids = append(ids, b.ID)
	}
	return []media.ResourceDescriptor{
		{Type: media.ResourceBusiness, IDs: ids, Tags: []types.MediaTag{media.TagLogo, media.TagGallery}},
	}
}

func buildBusinessViews(businesses []*types.Business, maps *media.Maps, locByID map[uuid.UUID]*types.Location) []*BusinessView {
	views := make([]*BusinessView, 0, len(businesses))
	for _, b := range businesses {
		view := &BusinessView{Business: b, Gallery: maps.Galleries[b.ID]}
		if logo, ok := maps.BusinessLogos[b.ID]; ok {
			view.Logo = &logo
		}
		if b.LocationID != nil {
			view.Location = locByID[*b.LocationID]
		}
		views = append(views, view)
	}
	return views
}

func (bs *businessService) CreateBusiness(ctx context.Context, business *types.Business) (*types.Business, error) {
	if business == nil {
		return nil, fmt.Errorf("business is nil")
	}
	business.Name = strings.TrimSpace(business.Name)
	if business.Name == "" {
		return nil, fmt.Errorf("business name is required")
	}
	if business.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("business has no owner")
	}
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	created, err := bs.businessRepo.Create(ctx, nil, []*types.Business{business})
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return created[0], nil
}

func (bs *businessService) UpdateBusiness(ctx context.Context, actorID uuid.UUID, business *types.Business) error {
	if business == nil || business.ID == uuid.Nil {
		return fmt.Errorf("business has no id")
	}
	if err := bs.requireOwner(ctx, actorID, business.ID); err != nil {
		return err
	}
	return bs.businessRepo.Update(ctx, nil, business)
}

func (bs *businessService) DeleteBusiness(ctx context.Context, actorID, businessID uuid.UUID) error {
	if err := bs.requireOwner(ctx, actorID, businessID); err != nil {
		return err
	}
	return bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := bs.businessRepo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{businessID}); err != nil {
			return fmt.Errorf("failed to delete business: %w", err)
		}
		if err := bs.commentRepo.SoftDeleteBySubject(ctx, tx, types.CommentSubjectBusiness, businessID); err != nil {
			return fmt.Errorf("failed to delete business comments: %w", err)
		}
		if err := bs.mediaService.DetachAllForResource(ctx, tx, media.ResourceBusiness, businessID); err != nil {
			return fmt.Errorf("failed to detach business media: %w", err)
		}
		return nil
	})
}

func (bs *businessService) requireOwner(ctx context.Context, actorID, businessID uuid.UUID) error {
	businesses, err := bs.businessRepo.GetByIDs(ctx, nil, []uuid.UUID{businessID})
	if err != nil {
		return fmt.Errorf("failed to load business: %w", err)
	}
	if len(businesses) == 0 {
		return fmt.Errorf("business not found")
	}
	if businesses[0].OwnerID != actorID {
		return fmt.Errorf("not the business owner")
	}
	return nil
}
