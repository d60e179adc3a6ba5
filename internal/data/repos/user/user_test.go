package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/cityfeedapp/cityfeed-backend/internal/data/repos/testutil"
	types "github.com/cityfeedapp/cityfeed-backend/internal/domain"
)

func TestUserRepoCreateAndLookup(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{
		ID:        uuid.New(),
		Email:     "repo-user@example.com",
		Password:  "hashed",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByIDs: len=%d err=%v", len(got), err)
	}
	if got[0].Email != u.Email {
		t.Fatalf("GetByIDs: email=%q", got[0].Email)
	}

	byEmail, err := repo.GetByEmails(ctx, tx, []string{u.Email})
	if err != nil || len(byEmail) != 1 || byEmail[0].ID != u.ID {
		t.Fatalf("GetByEmails: got=%+v err=%v", byEmail, err)
	}

	exists, err := repo.EmailExists(ctx, tx, u.Email)
	if err != nil || !exists {
		t.Fatalf("EmailExists(known): exists=%v err=%v", exists, err)
	}
	exists, err = repo.EmailExists(ctx, tx, "nobody@example.com")
	if err != nil || exists {
		t.Fatalf("EmailExists(unknown): exists=%v err=%v", exists, err)
	}
}

func TestUserRepoUpdateProfile(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{ID: uuid.New(), Email: "profile@example.com", Password: "hashed"}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.UpdateProfile(ctx, tx, u.ID, "Grace", "Hopper", "compilers"); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID})
	if err != nil || len(got) != 1 {
		t.Fatalf("GetByIDs: len=%d err=%v", len(got), err)
	}
	if got[0].FirstName != "Grace" || got[0].LastName != "Hopper" || got[0].Bio != "compilers" {
		t.Fatalf("UpdateProfile did not stick: %+v", got[0])
	}
}

func TestUserRepoSoftDelete(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewUserRepo(db, testutil.Logger(t))

	u := &types.User{ID: uuid.New(), Email: "gone@example.com", Password: "hashed"}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil {
		t.Fatalf("SoftDeleteByIDs: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{u.ID})
	if err != nil || len(got) != 0 {
		t.Fatalf("after soft delete: len=%d err=%v", len(got), err)
	}
}
