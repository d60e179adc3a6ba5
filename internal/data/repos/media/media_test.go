package media

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/testutil"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
	mediadomain "github.com/cityfeedapp/cityfeed-backend/internal/domain/media"
)

func seedRecord(rt types.ResourceType, rid uuid.UUID, tag types.MediaTag, pos int, url string) *types.MediaRecord {
	return &types.MediaRecord{
		ID:           uuid.New(),
		ResourceType: rt,
		ResourceID:   rid,
		Tag:          tag,
		Position:     pos,
		URL:          url,
	}
}

func TestMediaRepoFetchBatch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMediaRepo(db, testutil.Logger(t))

	post1 := uuid.New()
	post2 := uuid.New()
	author := uuid.New()
	stranger := uuid.New()

	rows := []*types.MediaRecord{
		seedRecord(mediadomain.ResourcePost, post1, mediadomain.TagFeaturedImage, 0, "https://cdn.example.com/p1f"),
		seedRecord(mediadomain.ResourcePost, post1, mediadomain.TagGallery, 2, "https://cdn.example.com/p1g2"),
		seedRecord(mediadomain.ResourcePost, post1, mediadomain.TagGallery, 0, "https://cdn.example.com/p1g0"),
		seedRecord(mediadomain.ResourcePost, post1, mediadomain.TagGallery, 1, "https://cdn.example.com/p1g1"),
		seedRecord(mediadomain.ResourceUserProfile, author, mediadomain.TagProfilePic, 0, "https://cdn.example.com/ava"),
		// must never come back: id outside every descriptor
		seedRecord(mediadomain.ResourceUserProfile, stranger, mediadomain.TagProfilePic, 0, "https://cdn.example.com/nope"),
		// must never come back: tag outside the post descriptor's tag set
		seedRecord(mediadomain.ResourcePost, post1, mediadomain.TagAttachment, 0, "https://cdn.example.com/att"),
	}
	if _, err := repo.Create(ctx, tx, rows); err != nil {
		t.Fatalf("Create: %v", err)
	}

	descriptors := []mediadomain.ResourceDescriptor{
		{
			Type: mediadomain.ResourcePost,
			IDs:  []uuid.UUID{post1, post2, post1}, // duplicate on purpose
			Tags: []types.MediaTag{mediadomain.TagFeaturedImage, mediadomain.TagGallery},
		},
		{
			Type: mediadomain.ResourceUserProfile,
			IDs:  []uuid.UUID{author},
			Tags: []types.MediaTag{mediadomain.TagProfilePic},
		},
	}

	got, err := repo.FetchBatch(ctx, tx, descriptors)
	if err != nil {
		t.Fatalf("FetchBatch: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("FetchBatch: expected 5 records, got %d", len(got))
	}
	for _, rec := range got {
		if rec.ResourceID == stranger {
			t.Fatalf("FetchBatch leaked a record outside the descriptor set")
		}
		if rec.Tag == mediadomain.TagAttachment {
			t.Fatalf("FetchBatch returned a tag outside the descriptor tag set")
		}
	}
	// Rows come back position-ascending.
	for i := 1; i < len(got); i++ {
		if got[i-1].Position > got[i].Position {
			t.Fatalf("FetchBatch rows not position-ordered at index %d", i)
		}
	}
}

func TestMediaRepoFetchBatchEmptyDescriptors(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMediaRepo(db, testutil.Logger(t))

	got, err := repo.FetchBatch(ctx, tx, nil)
	if err != nil {
		t.Fatalf("FetchBatch(nil): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("FetchBatch(nil): expected no records, got %d", len(got))
	}

	got, err = repo.FetchBatch(ctx, tx, []mediadomain.ResourceDescriptor{
		{Type: mediadomain.ResourcePost, IDs: nil},
	})
	if err != nil {
		t.Fatalf("FetchBatch(empty ids): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("FetchBatch(empty ids): expected no records, got %d", len(got))
	}
}

func TestMediaRepoLifecycle(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMediaRepo(db, testutil.Logger(t))

	biz := uuid.New()
	thumb := "https://cdn.example.com/logo_thumb"
	rec := &types.MediaRecord{
		ID:           uuid.New(),
		ResourceType: mediadomain.ResourceBusiness,
		ResourceID:   biz,
		Tag:          mediadomain.TagLogo,
		URL:          "https://cdn.example.com/logo",
		ThumbnailURL: &thumb,
		Variants:     datatypes.JSONMap{"public": "https://cdn.example.com/logo_public"},
	}
	if _, err := repo.Create(ctx, tx, []*types.MediaRecord{rec}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByResource(ctx, tx, mediadomain.ResourceBusiness, biz)
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByResource: len=%d err=%v", len(got), err)
	}
	if got[0].DisplayURL() != "https://cdn.example.com/logo_public" {
		t.Fatalf("variants did not round trip: %q", got[0].DisplayURL())
	}

	if err := repo.UpdatePosition(ctx, tx, rec.ID, 7); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	if got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{rec.ID}); err != nil || len(got) != 1 || got[0].Position != 7 {
		t.Fatalf("UpdatePosition verify: got=%+v err=%v", got, err)
	}

	if err := repo.SoftDeleteByResource(ctx, tx, mediadomain.ResourceBusiness, biz); err != nil {
		t.Fatalf("SoftDeleteByResource: %v", err)
	}
	if got, err := repo.GetByResource(ctx, tx, mediadomain.ResourceBusiness, biz); err != nil || len(got) != 0 {
		t.Fatalf("after soft delete: len=%d err=%v", len(got), err)
	}

	if err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{rec.ID}); err != nil {
		t.Fatalf("FullDeleteByIDs: %v", err)
	}
}
