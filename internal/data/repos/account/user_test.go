package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/swagship-backend/internal/data/repos/testutil"
	types "github.com/yungbote/swagship-backend/internal/domain"
)

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.User{
		{
			ID:       uuid.New(),
			Email:    "userrepo@example.com",
			Password: "pw",
			Name:     "User Repo",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 user, got %d", len(created))
	}

	gotByIDs, err := repo.GetByIDs(ctx, tx, []uuid.UUID{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != created[0].ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}

	exists, err := repo.EmailExists(ctx, tx, created[0].Email)
	if err != nil {
		t.Fatalf("EmailExists: %v", err)
	}
	if !exists {
		t.Fatalf("EmailExists: expected true")
	}
}

func TestUserRepoAddToBalance(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "balance@example.com", decimal.NewFromInt(40))

	ok, err := repo.AddToBalance(ctx, tx, u.ID, decimal.RequireFromString("-25"))
	if err != nil {
		t.Fatalf("AddToBalance (debit): %v", err)
	}
	if !ok {
		t.Fatalf("AddToBalance (debit): guard rejected an affordable debit")
	}

	balance, err := repo.GetBalance(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.StringFixed(2) != "15.00" {
		t.Fatalf("GetBalance after debit = %s, want 15.00", balance.StringFixed(2))
	}

	// Overdraft must be rejected without mutating the balance.
	ok, err = repo.AddToBalance(ctx, tx, u.ID, decimal.RequireFromString("-15.01"))
	if err != nil {
		t.Fatalf("AddToBalance (overdraft): %v", err)
	}
	if ok {
		t.Fatalf("AddToBalance (overdraft): guard allowed a negative balance")
	}
	balance, err = repo.GetBalance(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if balance.StringFixed(2) != "15.00" {
		t.Fatalf("balance changed on rejected debit: %s", balance.StringFixed(2))
	}

	// Exact spend-to-zero is allowed.
	ok, err = repo.AddToBalance(ctx, tx, u.ID, decimal.RequireFromString("-15"))
	if err != nil {
		t.Fatalf("AddToBalance (spend to zero): %v", err)
	}
	if !ok {
		t.Fatalf("AddToBalance (spend to zero): guard rejected an exact spend")
	}

	// Unknown user is indistinguishable from a failed guard.
	ok, err = repo.AddToBalance(ctx, tx, uuid.New(), decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("AddToBalance (missing user): %v", err)
	}
	if ok {
		t.Fatalf("AddToBalance (missing user): expected no rows affected")
	}
}
