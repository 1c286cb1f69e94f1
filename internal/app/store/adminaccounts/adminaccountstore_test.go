package adminaccountstore_test

import (
	"errors"
	"testing"

	adminaccountstore "github.com/dalemusser/admitportal/internal/app/store/adminaccounts"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminaccountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.AdminAccount{FullName: "Root", Email: "root@portal.io", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByEmail(ctx, "root@portal.io")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != created.ID || got.FullName != "Root" {
		t.Errorf("unexpected account: %+v", got)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminaccountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := models.AdminAccount{FullName: "Root", Email: "dup@portal.io", PasswordHash: "h"}
	if _, err := store.Create(ctx, a); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, a); !errors.Is(err, adminaccountstore.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_SeparateFromAdminEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdminEntry(ctx, "Notice", "Admissions open")

	n, err := db.Collection("admin_accounts").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 0 {
		t.Errorf("admin entries must not appear as accounts, got %d", n)
	}
}

func TestStore_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := adminaccountstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByEmail(ctx, "ghost@portal.io"); err != mongo.ErrNoDocuments {
		t.Errorf("GetByEmail: expected mongo.ErrNoDocuments, got %v", err)
	}
}
