package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type LocationService interface {
	List(ctx context.Context, limit, offset int) ([]*types.Location, error)
	GetLocation(ctx context.Context, locationID uuid.UUID) (*types.Location, error)
	ListByCity(ctx context.Context, city string) ([]*types.Location, error)
	CreateLocation(ctx context.Context, location *types.Location) (*types.Location, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error
}

type locationService struct {
	db           *gorm.DB
	log          *logger.Logger
	locationRepo repos.LocationRepo
}

func NewLocationService(db *gorm.DB, log *logger.Logger, locationRepo repos.LocationRepo) LocationService {
	serviceLog := log.With("service", "LocationService")
	return &locationService{db: db, log: serviceLog, locationRepo: locationRepo}
}

func (ls *locationService) List(ctx context.Context, limit, offset int) ([]*types.Location, error) {
	return ls.locationRepo.List(ctx, nil, limit, offset)
}

func (ls *locationService) GetLocation(ctx context.Context, locationID uuid.UUID) (*types.Location, error) {
	locations, err := ls.locationRepo.GetByIDs(ctx, nil, []uuid.UUID{locationID})
	if err != nil {
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	if len(locations) == 0 {
		return nil, nil
	}
	return locations[0], nil
}

func (ls *locationService) ListByCity(ctx context.Context, city string) ([]*types.Location, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return []*types.Location{}, nil
	}
	return ls.locationRepo.GetByCities(ctx, nil, []string{city})
}

func (ls *locationService) CreateLocation(ctx context.Context, location *types.Location) (*types.Location, error) {
	if location == nil {
		return nil, fmt.Errorf("location is nil")
	}
	location.Name = strings.TrimSpace(location.Name)
	if location.Name == "" {
		return nil, fmt.Errorf("location name is required")
	}
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	created, err := ls.locationRepo.Create(ctx, nil, []*types.Location{location})
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return created[0], nil
}

func (ls *locationService) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	return ls.locationRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{locationID})
}
