package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

// fakeMediaRepo serves canned rows and counts round trips.
type fakeMediaRepo struct {
	rows       []*types.MediaRecord
	fetchCalls int
}

func (f *fakeMediaRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.MediaRecord) ([]*types.MediaRecord, error) {
	f.rows = append(f.rows, rows...)
	return rows, nil
}

func (f *fakeMediaRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.MediaRecord, error) {
	var out []*types.MediaRecord
	for _, rec := range f.rows {
		for _, id := range ids {
			if rec.ID == id {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) GetByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) ([]*types.MediaRecord, error) {
	var out []*types.MediaRecord
	for _, rec := range f.rows {
		if rec.ResourceType == resourceType && rec.ResourceID == resourceID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) FetchBatch(ctx context.Context, tx *gorm.DB, descriptors []media.ResourceDescriptor) ([]*types.MediaRecord, error) {
	nonEmpty := 0
	for _, d := range descriptors {
		if len(d.DedupedIDs()) > 0 {
			nonEmpty++
		}
	}
	if nonEmpty == 0 {
		return nil, nil
	}
	f.fetchCalls++
	var out []*types.MediaRecord
	for _, rec := range f.rows {
		for _, d := range descriptors {
			if rec.ResourceType != d.Type {
				continue
			}
			idMatch := false
			for _, id := range d.DedupedIDs() {
				if rec.ResourceID == id {
					idMatch = true
					break
				}
			}
			if !idMatch {
				continue
			}
			if len(d.Tags) > 0 {
				tagMatch := false
				for _, tag := range d.Tags {
					if rec.Tag == tag {
						tagMatch = true
						break
					}
				}
				if !tagMatch {
					continue
				}
			}
			out = append(out, rec)
			break
		}
	}
	return out, nil
}

func (f *fakeMediaRepo) UpdatePosition(ctx context.Context, tx *gorm.DB, id uuid.UUID, position int) error {
	for _, rec := range f.rows {
		if rec.ID == id {
			rec.Position = position
		}
	}
	return nil
}

func (f *fakeMediaRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

func (f *fakeMediaRepo) SoftDeleteByResource(ctx context.Context, tx *gorm.DB, resourceType types.ResourceType, resourceID uuid.UUID) error {
	return nil
}

func (f *fakeMediaRepo) FullDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

func fakeRecord(rt types.ResourceType, rid uuid.UUID, tag types.MediaTag, pos int, url string) *types.MediaRecord {
	return &types.MediaRecord{ID: uuid.New(), ResourceType: rt, ResourceID: rid, Tag: tag, Position: pos, URL: url}
}

func newMediaFixture(t *testing.T) (*fakeMediaRepo, MediaService) {
	t.Helper()
	repo := &fakeMediaRepo{}
	svc := NewMediaService(nil, logger.NewNop(), repo)
	return repo, svc
}

func TestMediaServiceResolveSingleRoundTrip(t *testing.T) {
	repo, svc := newMediaFixture(t)

	post1 := uuid.New()
	post2 := uuid.New()
	author := uuid.New()
	repo.rows = []*types.MediaRecord{
		fakeRecord(media.ResourcePost, post1, media.TagFeaturedImage, 0, "https://cdn.example.com/p1f"),
		fakeRecord(media.ResourcePost, post1, media.TagGallery, 0, "https://cdn.example.com/p1g"),
		fakeRecord(media.ResourceUserProfile, author, media.TagProfilePic, 0, "https://cdn.example.com/ava"),
	}

	maps, err := svc.Resolve(context.Background(), nil, []media.ResourceDescriptor{
		{Type: media.ResourcePost, IDs: []uuid.UUID{post1, post2}, Tags: []types.MediaTag{media.TagFeaturedImage, media.TagGallery}},
		{Type: media.ResourceUserProfile, IDs: []uuid.UUID{author}, Tags: []types.MediaTag{media.TagProfilePic}},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if repo.fetchCalls != 1 {
		t.Fatalf("expected exactly one store round trip, got %d", repo.fetchCalls)
	}

	if _, ok := maps.FeaturedImages[post1]; !ok {
		t.Fatalf("post1 featured image missing")
	}
	if _, ok := maps.FeaturedImages[post2]; ok {
		t.Fatalf("post2 has no media and must be absent, not zero-valued")
	}
	if got := maps.Galleries[post1]; len(got) != 1 {
		t.Fatalf("post1 gallery: got %d entries", len(got))
	}
	if _, ok := maps.ProfilePics[author]; !ok {
		t.Fatalf("author profile pic missing")
	}
}

func TestMediaServiceResolveEmptyDescriptors(t *testing.T) {
	repo, svc := newMediaFixture(t)

	maps, err := svc.Resolve(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Resolve(nil): %v", err)
	}
	if repo.fetchCalls != 0 {
		t.Fatalf("empty input must not reach the store, got %d calls", repo.fetchCalls)
	}
	if maps == nil || len(maps.ByResource) != 0 {
		t.Fatalf("expected empty maps, got %+v", maps)
	}
}

func TestMediaServiceResolveRejectsUnknownDescriptor(t *testing.T) {
	_, svc := newMediaFixture(t)

	_, err := svc.Resolve(context.Background(), nil, []media.ResourceDescriptor{
		{Type: "banana", IDs: []uuid.UUID{uuid.New()}},
	})
	if err == nil {
		t.Fatalf("expected error for unknown resource type")
	}

	_, err = svc.Resolve(context.Background(), nil, []media.ResourceDescriptor{
		{Type: media.ResourcePost, IDs: []uuid.UUID{uuid.New()}, Tags: []types.MediaTag{"sticker"}},
	})
	if err == nil {
		t.Fatalf("expected error for unknown tag")
	}
}

func TestMediaServiceConveniencesRideBatchPath(t *testing.T) {
	repo, svc := newMediaFixture(t)

	biz := uuid.New()
	repo.rows = []*types.MediaRecord{
		fakeRecord(media.ResourceBusiness, biz, media.TagLogo, 0, "https://cdn.example.com/logo"),
		fakeRecord(media.ResourceBusiness, biz, media.TagGallery, 1, "https://cdn.example.com/g1"),
		fakeRecord(media.ResourceBusiness, biz, media.TagGallery, 0, "https://cdn.example.com/g0"),
	}

	logo, err := svc.BusinessLogo(context.Background(), nil, biz)
	if err != nil || logo == nil {
		t.Fatalf("BusinessLogo: logo=%v err=%v", logo, err)
	}
	if logo.URL != "https://cdn.example.com/logo" {
		t.Fatalf("BusinessLogo url: %q", logo.URL)
	}

	gallery, err := svc.Gallery(context.Background(), nil, media.ResourceBusiness, biz)
	if err != nil {
		t.Fatalf("Gallery: %v", err)
	}
	if len(gallery) != 2 || gallery[0].Position != 0 || gallery[1].Position != 1 {
		t.Fatalf("Gallery not position-ordered: %+v", gallery)
	}

	missing, err := svc.FeaturedImage(context.Background(), nil, media.ResourceBusiness, biz)
	if err != nil {
		t.Fatalf("FeaturedImage: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for absent featured image, got %+v", missing)
	}
}

func TestMediaServiceAttachValidates(t *testing.T) {
	_, svc := newMediaFixture(t)
	ctx := context.Background()

	if _, err := svc.Attach(ctx, nil, nil); err == nil {
		t.Fatalf("nil record must be rejected")
	}
	if _, err := svc.Attach(ctx, nil, &types.MediaRecord{
		ResourceType: "banana", ResourceID: uuid.New(), Tag: media.TagGallery, URL: "https://x",
	}); err == nil {
		t.Fatalf("unknown resource type must be rejected")
	}
	if _, err := svc.Attach(ctx, nil, &types.MediaRecord{
		ResourceType: media.ResourcePost, ResourceID: uuid.New(), Tag: "sticker", URL: "https://x",
	}); err == nil {
		t.Fatalf("unknown tag must be rejected")
	}

	rec, err := svc.Attach(ctx, nil, &types.MediaRecord{
		ResourceType: media.ResourcePost, ResourceID: uuid.New(), Tag: media.TagGallery, URL: "https://x",
	})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if rec.ID == uuid.Nil {
		t.Fatalf("Attach must assign an id")
	}
}

func TestMediaServiceReorderRejectsForeignIDs(t *testing.T) {
	repo, svc := newMediaFixture(t)

	biz := uuid.New()
	mine := fakeRecord(media.ResourceBusiness, biz, media.TagGallery, 0, "https://cdn.example.com/g0")
	repo.rows = []*types.MediaRecord{mine}

	err := svc.Reorder(context.Background(), &gorm.DB{}, media.ResourceBusiness, biz, []uuid.UUID{uuid.New()})
	if err == nil {
		t.Fatalf("foreign id must be rejected")
	}

	if err := svc.Reorder(context.Background(), &gorm.DB{}, media.ResourceBusiness, biz, []uuid.UUID{mine.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if mine.Position != 0 {
		t.Fatalf("position rewritten wrong: %d", mine.Position)
	}
}
