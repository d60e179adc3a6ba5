package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	"github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
	"github.com/cityfeedapp/cityfeed-backend/internal/platform/logger"
)

type fakePostRepo struct{ posts []*types.Post }

func (f *fakePostRepo) Create(ctx context.Context, tx *gorm.DB, posts []*types.Post) ([]*types.Post, error) {
	f.posts = append(f.posts, posts...)
	return posts, nil
}
func (f *fakePostRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Post, error) {
	var out []*types.Post
	for _, p := range f.posts {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
func (f *fakePostRepo) GetByAuthorIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Post, error) {
	return nil, nil
}
func (f *fakePostRepo) ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Post, error) {
	return f.posts, nil
}
func (f *fakePostRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Post, error) {
	var out []*types.Post
	for _, p := range f.posts {
		if p.Published && strings.Contains(strings.ToLower(p.Title), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePostRepo) Update(ctx context.Context, tx *gorm.DB, post *types.Post) error { return nil }
func (f *fakePostRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeNewsRepo struct{ items []*types.News }

func (f *fakeNewsRepo) Create(ctx context.Context, tx *gorm.DB, items []*types.News) ([]*types.News, error) {
	f.items = append(f.items, items...)
	return items, nil
}
func (f *fakeNewsRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.News, error) {
	return nil, nil
}
func (f *fakeNewsRepo) ListPublished(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.News, error) {
	return f.items, nil
}
func (f *fakeNewsRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.News, error) {
	var out []*types.News
	for _, n := range f.items {
		if strings.Contains(strings.ToLower(n.Headline), strings.ToLower(query)) {
			out = append(out, n)
		}
	}
	return out, nil
}
func (f *fakeNewsRepo) Update(ctx context.Context, tx *gorm.DB, item *types.News) error { return nil }
func (f *fakeNewsRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeBusinessRepo struct{ businesses []*types.Business }

func (f *fakeBusinessRepo) Create(ctx context.Context, tx *gorm.DB, businesses []*types.Business) ([]*types.Business, error) {
	f.businesses = append(f.businesses, businesses...)
	return businesses, nil
}
func (f *fakeBusinessRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Business, error) {
	var out []*types.Business
	for _, b := range f.businesses {
		for _, id := range ids {
			if b.ID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}
func (f *fakeBusinessRepo) GetByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.Business, error) {
	return nil, nil
}
func (f *fakeBusinessRepo) GetByLocationIDs(ctx context.Context, tx *gorm.DB, locationIDs []uuid.UUID) ([]*types.Business, error) {
	return nil, nil
}
func (f *fakeBusinessRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Business, error) {
	return f.businesses, nil
}
func (f *fakeBusinessRepo) Search(ctx context.Context, tx *gorm.DB, query string, limit int) ([]*types.Business, error) {
	var out []*types.Business
	for _, b := range f.businesses {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(query)) {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBusinessRepo) Update(ctx context.Context, tx *gorm.DB, business *types.Business) error {
	return nil
}
func (f *fakeBusinessRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

type fakeLocationRepo struct{ locations []*types.Location }

func (f *fakeLocationRepo) Create(ctx context.Context, tx *gorm.DB, locations []*types.Location) ([]*types.Location, error) {
	f.locations = append(f.locations, locations...)
	return locations, nil
}
func (f *fakeLocationRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Location, error) {
	var out []*types.Location
	for _, l := range f.locations {
		for _, id := range ids {
			if l.ID == id {
				out = append(out, l)
			}
		}
	}
	return out, nil
}
func (f *fakeLocationRepo) GetByCities(ctx context.Context, tx *gorm.DB, cities []string) ([]*types.Location, error) {
	return nil, nil
}
func (f *fakeLocationRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Location, error) {
	return f.locations, nil
}
func (f *fakeLocationRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	return nil
}

func TestSearchServiceCombinesMediaResolution(t *testing.T) {
	mediaRepo := &fakeMediaRepo{}
	mediaSvc := NewMediaService(nil, logger.NewNop(), mediaRepo)

	author := uuid.New()
	loc := &types.Location{ID: uuid.New(), Name: "Old Town", City: "Riverton"}
	post := &types.Post{ID: uuid.New(), AuthorID: author, Title: "Coffee festival this weekend", Published: true}
	newsItem := &types.News{ID: uuid.New(), AuthorID: author, Headline: "Coffee prices climb"}
	locID := loc.ID
	biz := &types.Business{ID: uuid.New(), OwnerID: author, Name: "Coffee Corner", LocationID: &locID}

	mediaRepo.rows = []*types.MediaRecord{
		fakeRecord(media.ResourcePost, post.ID, media.TagFeaturedImage, 0, "https://cdn.example.com/pf"),
		fakeRecord(media.ResourceNews, newsItem.ID, media.TagFeaturedImage, 0, "https://cdn.example.com/nf"),
		fakeRecord(media.ResourceBusiness, biz.ID, media.TagLogo, 0, "https://cdn.example.com/bl"),
		fakeRecord(media.ResourceUserProfile, author, media.TagProfilePic, 0, "https://cdn.example.com/ava"),
	}

	svc := NewSearchService(
		nil,
		logger.NewNop(),
		&fakePostRepo{posts: []*types.Post{post}},
		&fakeNewsRepo{items: []*types.News{newsItem}},
		&fakeBusinessRepo{businesses: []*types.Business{biz}},
		&fakeLocationRepo{locations: []*types.Location{loc}},
		mediaSvc,
	)

	results, err := svc.SearchAll(context.Background(), "coffee", 10)
	if err != nil {
		t.Fatalf("SearchAll: %v", err)
	}
	if mediaRepo.fetchCalls != 1 {
		t.Fatalf("expected one media round trip for the whole result page, got %d", mediaRepo.fetchCalls)
	}
	if len(results.Posts) != 1 || results.Posts[0].FeaturedImage == nil || results.Posts[0].AuthorAvatar == nil {
		t.Fatalf("post view incomplete: %+v", results.Posts)
	}
	if len(results.News) != 1 || results.News[0].FeaturedImage == nil {
		t.Fatalf("news view incomplete: %+v", results.News)
	}
	if len(results.Businesses) != 1 || results.Businesses[0].Logo == nil {
		t.Fatalf("business view incomplete: %+v", results.Businesses)
	}
	if results.Businesses[0].Location == nil || results.Businesses[0].Location.City != "Riverton" {
		t.Fatalf("business location missing: %+v", results.Businesses[0].Location)
	}
}

func TestSearchServiceBlankQuery(t *testing.T) {
	mediaRepo := &fakeMediaRepo{}
	svc := NewSearchService(
		nil,
		logger.NewNop(),
		&fakePostRepo{},
		&fakeNewsRepo{},
		&fakeBusinessRepo{},
		&fakeLocationRepo{},
		NewMediaService(nil, logger.NewNop(), mediaRepo),
	)
	results, err := svc.SearchAll(context.Background(), "   ", 10)
	if err != nil {
		t.Fatalf("SearchAll(blank): %v", err)
	}
	if len(results.Posts)+len(results.News)+len(results.Businesses) != 0 {
		t.Fatalf("blank query must return empty results")
	}
	if mediaRepo.fetchCalls != 0 {
		t.Fatalf("blank query must not reach the media store")
	}
}
