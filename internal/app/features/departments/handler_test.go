package departments_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/admitportal/internal/app/features/departments"
	uierrors "github.com/dalemusser/admitportal/internal/app/features/errors"
	"github.com/dalemusser/admitportal/internal/domain/models"
	"github.com/dalemusser/admitportal/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*departments.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := departments.NewHandler(db, nil, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func withID(r *http.Request, id string) *http.Request {
	return testutil.WithChiURLParam(r, "id", id)
}

func TestHandleCreate(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The university reference is shape-checked only.
	uid := primitive.NewObjectID()

	rec := testutil.NewRecorder()
	handler.HandleCreate(rec, testutil.JSONRequest(t, "POST", "/", map[string]string{
		"universityId": uid.Hex(),
		"name":         "Physics",
		"campus":       "Main",
		"description":  "<b>Optics</b> and <img src=x onerror=alert(1)>lasers",
	}))
	rec.AssertStatus(t, http.StatusCreated)

	var body struct {
		Message    string            `json:"message"`
		Department models.Department `json:"department"`
	}
	rec.DecodeJSON(t, &body)
	if body.Message != "Department added successfully" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Department.UniversityID != uid {
		t.Errorf("universityId = %s, want %s", body.Department.UniversityID.Hex(), uid.Hex())
	}

	var stored models.Department
	if err := fixtures.DB().Collection("departments").FindOne(ctx, bson.M{"_id": body.Department.ID}).Decode(&stored); err != nil {
		t.Fatalf("department not stored: %v", err)
	}
	if !strings.Contains(stored.Description, "Optics") || strings.Contains(stored.Description, "onerror") {
		t.Errorf("description not sanitized: %q", stored.Description)
	}
}

func TestHandleCreate_Rejects(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name      string
		body      map[string]string
		wantError string
	}{
		{"missing campus", map[string]string{"universityId": primitive.NewObjectID().Hex(), "name": "Physics"}, "Campus is required."},
		{"missing university", map[string]string{"name": "Physics", "campus": "Main"}, "University ID is required."},
		{"malformed university", map[string]string{"universityId": "42", "name": "Physics", "campus": "Main"}, "Invalid university ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			handler.HandleCreate(rec, testutil.JSONRequest(t, "POST", "/", tt.body))
			rec.AssertStatus(t, http.StatusBadRequest)
			if got := rec.ErrorMessage(t); got != tt.wantError {
				t.Errorf("error = %q, want %q", got, tt.wantError)
			}
		})
	}
}

func TestServeList(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	fixtures.CreateDepartment(ctx, a, "Physics")
	fixtures.CreateDepartment(ctx, b, "History")

	rec := testutil.NewRecorder()
	handler.ServeList(rec, httptest.NewRequest("GET", "/?universityId="+b.Hex(), nil))
	rec.AssertStatus(t, http.StatusOK)

	var list []models.Department
	rec.DecodeJSON(t, &list)
	if len(list) != 1 || list[0].Name != "History" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid := primitive.NewObjectID()
	d := fixtures.CreateDepartment(ctx, uid, "Physics")
	id := d.ID.Hex()

	rec := testutil.NewRecorder()
	handler.HandleUpdate(rec, withID(testutil.JSONRequest(t, "PUT", "/"+id, map[string]string{
		"universityId": uid.Hex(), "name": "Applied Physics", "campus": "East",
	}), id))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Department updated successfully")

	var stored models.Department
	if err := fixtures.DB().Collection("departments").FindOne(ctx, bson.M{"_id": d.ID}).Decode(&stored); err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if stored.Name != "Applied Physics" || stored.Campus != "East" {
		t.Errorf("update not applied: %+v", stored)
	}

	rec = testutil.NewRecorder()
	handler.HandleUpdate(rec, withID(testutil.JSONRequest(t, "PUT", "/"+id, map[string]string{
		"universityId": uid.Hex(), "name": "No campus",
	}), id))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = testutil.NewRecorder()
	handler.ServeView(rec, withID(httptest.NewRequest("GET", "/"+id, nil), id))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Applied Physics")

	rec = testutil.NewRecorder()
	handler.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/"+id, nil), id))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Department deleted successfully")

	rec = testutil.NewRecorder()
	handler.ServeView(rec, withID(httptest.NewRequest("GET", "/"+id, nil), id))
	rec.AssertStatus(t, http.StatusNotFound)
	if got := rec.ErrorMessage(t); got != "Department not found" {
		t.Errorf("error = %q", got)
	}

	rec = testutil.NewRecorder()
	handler.HandleDelete(rec, withID(httptest.NewRequest("DELETE", "/oops", nil), "oops"))
	rec.AssertStatus(t, http.StatusBadRequest)
	if got := rec.ErrorMessage(t); got != "Invalid department ID" {
		t.Errorf("error = %q", got)
	}
}
