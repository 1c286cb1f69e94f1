package metricsstore_test

import (
	"context"
	"testing"

	metricsstore "github.com/dalemusser/admitportal/internal/app/store/metrics"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFetchUniversityStats_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	stats, err := metricsstore.FetchUniversityStats(ctx, db, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("FetchUniversityStats failed: %v", err)
	}
	if stats != (metricsstore.UniversityStats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestFetchUniversityStats_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uni := fixtures.CreateUniversity(ctx, "State", "state@uni.edu", "pw")
	other := fixtures.CreateUniversity(ctx, "Other", "other@uni.edu", "pw")

	for _, name := range []string{"North", "South", "East"} {
		fixtures.CreateCampus(ctx, uni.ID, name)
	}
	fixtures.CreateCampus(ctx, other.ID, "Elsewhere")
	fixtures.CreateProgram(ctx, uni.ID, "BSc")
	fixtures.CreateProgram(ctx, uni.ID, "MSc")

	stats, err := metricsstore.FetchUniversityStats(ctx, db, uni.ID)
	if err != nil {
		t.Fatalf("FetchUniversityStats failed: %v", err)
	}
	want := metricsstore.UniversityStats{Campuses: 3, Programs: 2, Applicants: 0}
	if stats != want {
		t.Errorf("got %+v, want %+v", stats, want)
	}

	s := fixtures.CreateStudent(ctx, "Applicant", "app@example.com", "pw")
	if _, err := db.Collection("students").UpdateByID(ctx, s.ID, bson.M{"$set": bson.M{"applied_university": uni.ID.Hex()}}); err != nil {
		t.Fatalf("set applied_university: %v", err)
	}

	stats, err = metricsstore.FetchUniversityStats(ctx, db, uni.ID)
	if err != nil {
		t.Fatalf("FetchUniversityStats failed: %v", err)
	}
	if stats.Applicants != 1 {
		t.Errorf("Applicants = %d, want 1", stats.Applicants)
	}
}

func TestFetchUniversityStats_CanceledContext(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := metricsstore.FetchUniversityStats(ctx, db, primitive.NewObjectID()); err == nil {
		t.Error("expected error for canceled context")
	}
}
