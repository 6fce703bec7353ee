package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/swagship-backend/internal/data/repos/testutil"
	types "github.com/yungbote/swagship-backend/internal/domain"
)

func TestEntryRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewEntryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "entryrepo@example.com", decimal.Zero)

	testutil.SeedLedgerEntry(t, ctx, tx, u.ID, types.KindWelcomeGrant, decimal.NewFromInt(40), nil)
	testutil.SeedLedgerEntry(t, ctx, tx, u.ID, types.KindCreditPurchase, decimal.NewFromInt(25), testutil.PtrString("ch_entryrepo_1"))
	testutil.SeedLedgerEntry(t, ctx, tx, u.ID, types.KindOrderDebit, decimal.NewFromInt(-30), nil)

	rows, err := repo.ListByUserID(ctx, tx, u.ID, 0, 10)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByUserID: got %d entries, want 3", len(rows))
	}

	count, err := repo.CountByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("CountByUserID: %v", err)
	}
	if count != 3 {
		t.Fatalf("CountByUserID = %d, want 3", count)
	}

	sum, err := repo.SumByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("SumByUserID: %v", err)
	}
	if sum.StringFixed(2) != "35.00" {
		t.Fatalf("SumByUserID = %s, want 35.00", sum.StringFixed(2))
	}

	exists, err := repo.ExternalRefExists(ctx, tx, "ch_entryrepo_1")
	if err != nil {
		t.Fatalf("ExternalRefExists: %v", err)
	}
	if !exists {
		t.Fatalf("ExternalRefExists: expected true")
	}
	exists, err = repo.ExternalRefExists(ctx, tx, "ch_never_seen")
	if err != nil {
		t.Fatalf("ExternalRefExists (missing): %v", err)
	}
	if exists {
		t.Fatalf("ExternalRefExists (missing): expected false")
	}
}

func TestEntryRepoSumEmpty(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewEntryRepo(db, testutil.Logger(t))

	sum, err := repo.SumByUserID(context.Background(), tx, uuid.New())
	if err != nil {
		t.Fatalf("SumByUserID: %v", err)
	}
	if !sum.IsZero() {
		t.Fatalf("SumByUserID for unknown user = %s, want 0", sum)
	}
}

func TestEntryRepoUniqueExternalRef(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewEntryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "uniqueref@example.com", decimal.Zero)

	ref := "ch_unique_1"
	if _, err := repo.Create(ctx, tx, []*types.LedgerEntry{{
		ID: uuid.New(), UserID: u.ID, Kind: types.KindCreditPurchase,
		Amount: decimal.NewFromInt(25), ExternalRef: &ref, Description: "first",
	}}); err != nil {
		t.Fatalf("Create (first): %v", err)
	}

	_, err := repo.Create(ctx, tx, []*types.LedgerEntry{{
		ID: uuid.New(), UserID: u.ID, Kind: types.KindCreditPurchase,
		Amount: decimal.NewFromInt(25), ExternalRef: &ref, Description: "second",
	}})
	if err == nil {
		t.Fatalf("Create (duplicate ref): expected unique violation")
	}

	// NULL refs do not collide with each other.
	tx2 := testutil.Tx(t, db)
	u2 := testutil.SeedUser(t, ctx, tx2, "uniqueref2@example.com", decimal.Zero)
	testutil.SeedLedgerEntry(t, ctx, tx2, u2.ID, types.KindOrderDebit, decimal.NewFromInt(-1), nil)
	testutil.SeedLedgerEntry(t, ctx, tx2, u2.ID, types.KindOrderDebit, decimal.NewFromInt(-2), nil)
}
