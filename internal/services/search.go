package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type SearchResults struct {
	Posts      []*PostView     `json:"posts"`
	News       []*NewsView     `json:"news"`
	Businesses []*BusinessView `json:"businesses"`
}

type SearchService interface {
	SearchAll(ctx context.Context, query string, limit int) (*SearchResults, error)
}

type searchService struct {
	db           *gorm.DB
	log          *logger.Logger
	postRepo     repos.PostRepo
	newsRepo     repos.NewsRepo
	businessRepo repos.BusinessRepo
	locationRepo repos.LocationRepo
	mediaService MediaService
}

func NewSearchService(
	db *gorm.DB,
	log *logger.Logger,
	postRepo repos.PostRepo,
	newsRepo repos.NewsRepo,
	businessRepo repos.BusinessRepo,
	locationRepo repos.LocationRepo,
	mediaService MediaService,
) SearchService {
	serviceLog := log.With("service", "SearchService")
	return &searchService{
		db:           db,
		log:          serviceLog,
		postRepo:     postRepo,
		newsRepo:     newsRepo,
		businessRepo: businessRepo,
		locationRepo: locationRepo,
		mediaService: mediaService,
	}
}

// SearchAll fans out over the three content stores in parallel, then resolves
// media for every hit in one batch.
func (ss *searchService) SearchAll(ctx context.Context, query string, limit int) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &SearchResults{Posts: []*PostView{}, News: []*NewsView{}, Businesses: []*BusinessView{}}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	var (
		posts      []*types.Post
		news       []*types.News
		businesses []*types.Business
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = ss.postRepo.Search(gctx, nil, query, limit)
		return err
	})
	g.Go(func() error {
		var err error
		news, err = ss.newsRepo.Search(gctx, nil, query, limit)
		return err
	})
	g.Go(func() error {
		var err error
		businesses, err = ss.businessRepo.Search(gctx, nil, query, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	descriptors := postPageDescriptors(posts)
	descriptors = append(descriptors, newsPageDescriptors(news)...)
	descriptors = append(descriptors, businessPageDescriptors(businesses)...)
	maps, err := ss.mediaService.Resolve(ctx, nil, descriptors)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve search media: %w", err)
	}

	locationIDs := make([]uuid.UUID, 0, len(businesses))
	for _, b := range businesses {
		if b.LocationID != nil {
			locationIDs = append(locationIDs, *b.LocationID)
		}
	}
	locByID := map[uuid.UUID]*types.Location{}
	if len(locationIDs) > 0 {
		locations, err := ss.locationRepo.GetByIDs(ctx, nil, locationIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load search locations: %w", err)
		}
		for _, loc := range locations {
			locByID[loc.ID] = loc
		}
	}

	return &SearchResults{
		Posts:      buildPostViews(posts, maps),
		News:       buildNewsViews(news, maps),
		Businesses: buildBusinessViews(businesses, maps, locByID),
	}, nil
}
