package content

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/testutil"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
)

func seedPost(author uuid.UUID, title, body string, published bool) *types.Post {
	return &types.Post{
		ID:        uuid.New(),
		AuthorID:  author,
		Title:     title,
		Body:      body,
		Published: published,
	}
}

func seedAuthor(t *testing.T, tx *gorm.DB) uuid.UUID {
	t.Helper()
	u := &types.User{ID: uuid.New(), Email: uuid.NewString() + "@example.com", Password: "hashed"}
	if err := tx.Create(u).Error; err != nil {
		t.Fatalf("seed author: %v", err)
	}
	return u.ID
}

func TestPostRepoSearchPublishedOnly(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPostRepo(db, testutil.Logger(t))
	author := seedAuthor(t, tx)

	posts := []*types.Post{
		seedPost(author, "Farmers market opens", "fresh produce downtown", true),
		seedPost(author, "Draft notes", "farmers market rumor", false),
		seedPost(author, "Bridge closure", "no produce here", true),
	}
	if _, err := repo.Create(ctx, tx, posts); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Search(ctx, tx, "FARMERS", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].ID != posts[0].ID {
		t.Fatalf("Search: expected only the published match, got %d rows", len(got))
	}

	got, err = repo.Search(ctx, tx, "   ", 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("Search(blank): len=%d err=%v", len(got), err)
	}
}

func TestPostRepoListPublished(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPostRepo(db, testutil.Logger(t))
	author := seedAuthor(t, tx)

	if _, err := repo.Create(ctx, tx, []*types.Post{
		seedPost(author, "a", "x", true),
		seedPost(author, "b", "y", true),
		seedPost(author, "c", "z", false),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.ListPublished(ctx, tx, 10, 0)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListPublished: expected 2, got %d", len(got))
	}
	for _, p := range got {
		if !p.Published {
			t.Fatalf("ListPublished returned unpublished post %s", p.ID)
		}
	}
}

func TestPostRepoUpdateAndSoftDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewPostRepo(db, testutil.Logger(t))

	p := seedPost(seedAuthor(t, tx), "before", "body", true)
	if _, err := repo.Create(ctx, tx, []*types.Post{p}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	p.Title = "after"
	if err := repo.Update(ctx, tx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID})
	if err != nil || len(got) != 1 || got[0].Title != "after" {
		t.Fatalf("Update verify: got=%+v err=%v", got, err)
	}

	if err := repo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil {
		t.Fatalf("SoftDeleteByIDs: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID})
	if err != nil || len(got) != 0 {
		t.Fatalf("after soft delete: len=%d err=%v", len(got), err)
	}
}
