package indexes_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/admitportal/internal/app/system/indexes"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bson.M {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes on %s failed: %v", coll, err)
	}
	defer cur.Close(ctx)

	out := map[string]bson.M{}
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			out[name] = idx
		}
	}
	return out
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// SetupTestDB already ran EnsureAll once.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("second EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("third EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)

	tests := []struct {
		collection string
		name       string
		unique     bool
	}{
		{"students", "uniq_students_email", true},
		{"students", "idx_students_applied_university", false},
		{"universities", "uniq_universities_email", true},
		{"campuses", "idx_campuses_university", false},
		{"departments", "idx_departments_university", false},
		{"faculty", "idx_faculty_university", false},
		{"programs", "idx_programs_university", false},
		{"admins", "idx_admins_created_at", false},
		{"admin_accounts", "uniq_admin_accounts_email", true},
		{"audit_log", "idx_audit_log_timestamp", false},
		{"audit_log", "idx_audit_log_category_type_ts", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := indexNames(t, db, tt.collection)[tt.name]
			if !ok {
				t.Fatalf("expected index %q on %s", tt.name, tt.collection)
			}
			gotUnique, _ := idx["unique"].(bool)
			if gotUnique != tt.unique {
				t.Errorf("unique = %v, want %v", gotUnique, tt.unique)
			}
		})
	}
}

func TestEnsureAll_UniqueEmailRejectsDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, coll := range []string{"students", "universities", "admin_accounts"} {
		c := db.Collection(coll)
		if _, err := c.InsertOne(ctx, bson.M{"email": "dup@example.com"}); err != nil {
			t.Fatalf("%s: first insert failed: %v", coll, err)
		}
		_, err := c.InsertOne(ctx, bson.M{"email": "dup@example.com"})
		if !mongo.IsDuplicateKeyError(err) {
			t.Errorf("%s: expected duplicate key error, got %v", coll, err)
		}
	}
}

func TestEnsureAll_ReplacesMisnamedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := db.Collection("admins")
	if _, err := c.Indexes().DropOne(ctx, "idx_admins_created_at"); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("legacy_created"),
	})
	if err != nil {
		t.Fatalf("create legacy index failed: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names := indexNames(t, db, "admins")
	if _, ok := names["legacy_created"]; ok {
		t.Error("legacy index should have been dropped")
	}
	if _, ok := names["idx_admins_created_at"]; !ok {
		t.Error("expected idx_admins_created_at to be recreated")
	}
}

func TestEnsureAll_ReportsDuplicatesBlockingUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	c := db.Collection("universities")
	if _, err := c.Indexes().DropOne(ctx, "uniq_universities_email"); err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := c.InsertOne(ctx, bson.M{"email": "same@uni.edu"}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	err := indexes.EnsureAll(ctx, db)
	if err == nil {
		t.Fatal("expected EnsureAll to fail while duplicates exist")
	}
	if !strings.Contains(err.Error(), "universities") {
		t.Errorf("error should name the collection: %v", err)
	}
}
