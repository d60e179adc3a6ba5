package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/apierr"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

// MediaService is the single entry point for attaching media to resources and
// resolving it back. Consumers hand Resolve the full set of descriptors for a
// page and get derived maps back from one store round trip.
type MediaService interface {
	Resolve(ctx context.Context, tx *gorm.DB, descriptors []media.ResourceDescriptor) (*media.Maps, error)
	ResolveOne(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) (*media.Maps, error)
	FetchBatch(ctx context.Context, tx *gorm.DB, descriptors []media.ResourceDescriptor) ([]*types.MediaRecord, error)

	FeaturedImage(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) (*media.Processed, error)
	Gallery(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) ([]media.Processed, error)
	ProfilePic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*media.Processed, error)
	BusinessLogo(ctx context.Context, tx *gorm.DB, businessID uuid.UUID) (*media.Processed, error)

	Attach(ctx context.Context, tx *gorm.DB, record *types.MediaRecord) (*types.MediaRecord, error)
	Detach(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
	DetachAllForResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) error
	Reorder(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID, orderedIDs []uuid.UUID) error
}

type mediaService struct {
	db        *gorm.DB
	log       *logger.Logger
	mediaRepo repos.MediaRepo
}

func NewMediaService(db *gorm.DB, log *logger.Logger, mediaRepo repos.MediaRepo) MediaService {
	serviceLog := log.With("service", "MediaService")
	return &mediaService{db: db, log: serviceLog, mediaRepo: mediaRepo}
}

func (ms *mediaService) Resolve(ctx context.Context, tx *gorm.DB, descriptors []media.ResourceDescriptor) (*media.Maps, error) {
	ctx, span := otel.Tracer("services/media").Start(ctx, "MediaService.Resolve")
	defer span.End()
	span.SetAttributes(attribute.Int("media.descriptor_count", len(descriptors)))

	records, err := ms.FetchBatch(ctx, tx, descriptors)
	if err != nil {
		return nil, err
	}

	maps, gated := media.BuildMaps(records)
	for _, rec := range gated {
		ms.log.Warn("media tag attached to incompatible resource type",
			"media_id", rec.ID,
			"resource_type", rec.ResourceType,
			"tag", rec.Tag,
		)
	}
	span.SetAttributes(
		attribute.Int("media.record_count", len(records)),
		attribute.Int("media.gated_count", len(gated)),
	)
	return maps, nil
}

func (ms *mediaService) FetchBatch(ctx context.Context, tx *gorm.DB, descriptors []media.ResourceDescriptor) ([]*types.MediaRecord, error) {
	ctx, span := otel.Tracer("services/media").Start(ctx, "MediaService.FetchBatch")
	defer span.End()

	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, apierr.New(http.StatusBadRequest, "invalid_media_descriptor", err)
		}
	}
	return ms.mediaRepo.FetchBatch(ctx, tx, descriptors)
}

// Convenience lookups. Each one rides the batch path with a single
// descriptor so the resolution semantics never fork.

func (ms *mediaService) ResolveOne(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) (*media.Maps, error) {
	return ms.Resolve(ctx, tx, []media.ResourceDescriptor{{
		Type: resourceType,
		IDs:  []uuid.UUID{resourceID},
	}})
}

func (ms *mediaService) FeaturedImage(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) (*media.Processed, error) {
	maps, err := ms.Resolve(ctx, tx, []media.ResourceDescriptor{{
		Type: resourceType,
		IDs:  []uuid.UUID{resourceID},
		Tags: []types.MediaTag{media.TagFeaturedImage},
	}})
	if err != nil {
		return nil, err
	}
	if p, ok := maps.FeaturedImages[resourceID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (ms *mediaService) Gallery(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) ([]media.Processed, error) {
	maps, err := ms.Resolve(ctx, tx, []media.ResourceDescriptor{{
		Type: resourceType,
		IDs:  []uuid.UUID{resourceID},
		Tags: []types.MediaTag{media.TagGallery},
	}})
	if err != nil {
		return nil, err
	}
	return maps.Galleries[resourceID], nil
}

func (ms *mediaService) ProfilePic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*media.Processed, error) {
	maps, err := ms.Resolve(ctx, tx, []media.ResourceDescriptor{{
		Type: media.ResourceUserProfile,
		IDs:  []uuid.UUID{userID},
		Tags: []types.MediaTag{media.TagProfilePic},
	}})
	if err != nil {
		return nil, err
	}
	if p, ok := maps.ProfilePics[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (ms *mediaService) BusinessLogo(ctx context.Context, tx *gorm.DB, businessID uuid.UUID) (*media.Processed, error) {
	maps, err := ms.Resolve(ctx, tx, []media.ResourceDescriptor{{
		Type: media.ResourceBusiness,
		IDs:  []uuid.UUID{businessID},
		Tags: []types.MediaTag{media.TagLogo},
	}})
	if err != nil {
		return nil, err
	}
	if p, ok := maps.BusinessLogos[businessID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (ms *mediaService) Attach(ctx context.Context, tx *gorm.DB, record *types.MediaRecord) (*types.MediaRecord, error) {
	if record == nil {
		return nil, fmt.Errorf("media record is nil")
	}
	if !record.ResourceType.Valid() {
		return nil, fmt.Errorf("unknown resource type %q", record.ResourceType)
	}
	if !record.Tag.Valid() {
		return nil, fmt.Errorf("unknown media tag %q", record.Tag)
	}
	if record.ResourceID == uuid.Nil {
		return nil, fmt.Errorf("media record has no resource id")
	}
	if record.URL == "" {
		return nil, fmt.Errorf("media record has no url")
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	created, err := ms.mediaRepo.Create(ctx, tx, []*types.MediaRecord{record})
	if err != nil {
		return nil, fmt.Errorf("failed to attach media: %w", err)
	}
	return created[0], nil
}

func (ms *mediaService) Detach(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return ms.mediaRepo.SoftDeleteByIDs(ctx, tx, ids)
}

func (ms *mediaService) DetachAllForResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) error {
	if !resourceType.Valid() {
		return fmt.Errorf("unknown resource type %q", resourceType)
	}
	return ms.mediaRepo.SoftDeleteByResource(ctx, tx, resourceType, resourceID)
}

// Reorder rewrites gallery positions to match orderedIDs. IDs that do not
// belong to the resource are rejected before anything is written.
func (ms *mediaService) Reorder(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID, orderedIDs []uuid.UUID) error {
	if !resourceType.Valid() {
		return fmt.Errorf("unknown resource type %q", resourceType)
	}
	existing, err := ms.mediaRepo.GetByResource(ctx, tx, resourceType, resourceID)
	if err != nil {
		return err
	}
	owned := make(map[uuid.UUID]bool, len(existing))
	for _, rec := range existing {
		owned[rec.ID] = true
	}
	for _, id := range orderedIDs {
		if !owned[id] {
			return fmt.Errorf("media %s does not belong to %s %s", id, resourceType, resourceID)
		}
	}
	run := func(t *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := ms.mediaRepo.UpdatePosition(ctx, t, id, i); err != nil {
				return fmt.Errorf("failed to reposition media %s: %w", id, err)
			}
		}
		return nil
	}
	if tx != nil {
		return run(tx)
	}
	return ms.db.WithContext(ctx).Transaction(run)
}
